package compute

import (
	"log/slog"
	"testing"
)

func TestNewBackend(t *testing.T) {
	s, err := New("cpu", 16, 16)
	if err != nil {
		t.Fatalf("cpu backend: %v", err)
	}
	if s.Name() != "cpu" {
		t.Fatalf("backend name %q, expected cpu", s.Name())
	}
	if err := s.Close(); err != nil {
		t.Fatalf("closing cpu backend: %v", err)
	}
}

func TestNewUnknownBackend(t *testing.T) {
	if _, err := New("cuda", 16, 16); err == nil {
		t.Fatal("expected an error for an unknown backend name")
	}
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(slog.Default())
	SetLogger(nil)
	// The nil reset must leave a usable silent logger behind.
	logger().Info("discarded")
}
