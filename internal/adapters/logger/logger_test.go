package logger_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"go.trai.ch/taskprep/internal/adapters/logger"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(&buf)

	lg.Info("some message")

	out := buf.String()
	if !strings.Contains(out, "some message") {
		t.Errorf("expected output to contain 'some message', got: %s", out)
	}
	if !strings.Contains(out, "INFO") {
		t.Errorf("expected output to contain 'INFO', got: %s", out)
	}
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(&buf)

	lg.Warn("heads up")

	if !strings.Contains(buf.String(), "WARN") {
		t.Errorf("expected output to contain 'WARN', got: %s", buf.String())
	}
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(&buf)

	lg.Error(os.ErrPermission)

	out := buf.String()
	if !strings.Contains(out, "permission denied") {
		t.Errorf("expected output to contain 'permission denied', got: %s", out)
	}
	if !strings.Contains(out, "ERROR") {
		t.Errorf("expected output to contain 'ERROR', got: %s", out)
	}
}
