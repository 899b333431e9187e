package ops

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/tickdown/tickdown/internal/config"
	"github.com/tickdown/tickdown/internal/errors"
)

func TestValidatePath_TraversalRejected(t *testing.T) {
	cfg := config.DefaultConfig()

	tests := []struct {
		name string
		path string
	}{
		{"parent traversal", "../history.json"},
		{"deep traversal", "../../etc/history.json"},
		{"mid-path traversal", "/tmp/../etc/history.json"},
		{"hidden in path", "/tmp/safe/../../../etc/shadow.json"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			wantCode(t, ValidatePath(tc.path, cfg), errors.ErrInvalidRequest)
		})
	}
}

func TestValidatePath_ExtensionRequired(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.AllowUnsafePaths = true // Allow any directory

	tests := []struct {
		name string
		path string
	}{
		{"no extension", "/tmp/history"},
		{"wrong extension", "/tmp/history.jsonl"},
		{"txt extension", "/tmp/history.txt"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			wantCode(t, ValidatePath(tc.path, cfg), errors.ErrInvalidRequest)
		})
	}
}

func TestValidatePath_EmptyPath(t *testing.T) {
	wantCode(t, ValidatePath("", config.DefaultConfig()), errors.ErrInvalidRequest)
}

func TestValidatePath_DirectoryRestriction(t *testing.T) {
	cfg := config.DefaultConfig()
	// Default config: only ~/.tickdown/exports allowed

	wantCode(t, ValidatePath("/tmp/history.json", cfg), errors.ErrInvalidRequest)
}

func TestValidatePath_DefaultExportsDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".tickdown", "exports")
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	err := ValidatePath(filepath.Join(dir, "history.json"), config.DefaultConfig())
	if err != nil {
		t.Errorf("expected success for default exports dir, got: %v", err)
	}

	// Subdirectories of the exports dir are not allowed.
	sub := filepath.Join(dir, "nested", "history.json")
	wantCode(t, ValidatePath(sub, config.DefaultConfig()), errors.ErrInvalidRequest)
}

func TestValidatePath_AllowedPaths(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.AllowedPaths = []string{tmpDir}

	if err := ValidatePath(filepath.Join(tmpDir, "history.json"), cfg); err != nil {
		t.Errorf("expected success for allowed path, got: %v", err)
	}

	// Relative allowlist entries are ignored.
	cfg.AllowedPaths = []string{"relative/dir"}
	wantCode(t, ValidatePath(filepath.Join(tmpDir, "history.json"), cfg), errors.ErrInvalidRequest)
}

func TestValidatePath_AllowUnsafePaths(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.AllowUnsafePaths = true

	if err := ValidatePath(filepath.Join(tmpDir, "history.json"), cfg); err != nil {
		t.Errorf("expected success with AllowUnsafePaths=true, got: %v", err)
	}
}

func TestValidatePath_SymlinkRejected(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require elevation on windows")
	}

	tmpDir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.AllowUnsafePaths = true

	target := filepath.Join(tmpDir, "target.json")
	if err := os.WriteFile(target, []byte("[]"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	link := filepath.Join(tmpDir, "link.json")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("Symlink failed: %v", err)
	}

	wantCode(t, ValidatePath(link, cfg), errors.ErrInvalidRequest)
}

func TestValidatePath_SymlinkParentRejected(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require elevation on windows")
	}

	tmpDir := t.TempDir()
	realDir := filepath.Join(tmpDir, "real")
	if err := os.MkdirAll(realDir, 0700); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	linkDir := filepath.Join(tmpDir, "link")
	if err := os.Symlink(realDir, linkDir); err != nil {
		t.Fatalf("Symlink failed: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.AllowedPaths = []string{linkDir}

	// The allowlist entry resolves to the real directory, so the
	// symlinked parent no longer matches.
	wantCode(t, ValidatePath(filepath.Join(linkDir, "history.json"), cfg), errors.ErrInvalidRequest)
}
