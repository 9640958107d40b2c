package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestGetLevel(t *testing.T) {
	tests := []struct {
		input string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"DEBUG", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"trace", logrus.TraceLevel},
		{"", logrus.InfoLevel},
		{"verbose", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := GetLevel(tt.input); got != tt.want {
				t.Errorf("GetLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetupWritesToFile(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)

	path := filepath.Join(t.TempDir(), "logs", "fitcalc")
	closer, err := Setup(Params{FileName: path, Level: "debug", JSON: true})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}

	logrus.WithField("component", "test").Debug("hello from test")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path + ".log")
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"component":"test"`) {
		t.Errorf("log file missing JSON field, got %q", data)
	}
	if logrus.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", logrus.GetLevel())
	}
}

func TestSetupWithoutFileDiscards(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)

	closer, err := Setup(Params{Level: "info"})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestSetupReportsUnusableDirectory(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)

	// A regular file where the log directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	closer, err := Setup(Params{FileName: filepath.Join(blocker, "logs", "fitcalc")})
	if err == nil {
		t.Fatal("expected error when the log directory cannot be created")
	}
	if closer == nil {
		t.Fatal("expected a usable closer alongside the error")
	}
	if err := closer.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
