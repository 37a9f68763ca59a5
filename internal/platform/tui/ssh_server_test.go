package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewSSHServerCreatesHostKey(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "keys", "host_key")

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = keyPath

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	defer srv.Shutdown()

	if _, err := os.Stat(keyPath); err != nil {
		t.Errorf("host key not generated: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q, expected %q", srv.Addr(), "127.0.0.1:0")
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23235" {
		t.Errorf("Address = %q, expected :23235", cfg.Address)
	}
	if err := cfg.Quiz.Validate(); err != nil {
		t.Errorf("default quiz config invalid: %v", err)
	}
}
