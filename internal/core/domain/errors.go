package domain

import "go.trai.ch/zerr"

var (
	// ErrCommandFailed is returned when a spawned shell command exits non-zero.
	ErrCommandFailed = zerr.New("command failed")

	// ErrMissingAllTarget is returned when a multi-target task is declared without the required "all" entry.
	ErrMissingAllTarget = zerr.New(`targets must include an "all" entry`)

	// ErrManifestInvalid is returned when the task manifest fails validation.
	ErrManifestInvalid = zerr.New("invalid manifest")

	// ErrTaskNotFound is returned when a requested task is not declared in the manifest.
	ErrTaskNotFound = zerr.New("task not found")
)
