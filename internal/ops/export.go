package ops

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tickdown/tickdown/internal/config"
	"github.com/tickdown/tickdown/internal/errors"
	"github.com/tickdown/tickdown/internal/history"
	"github.com/tickdown/tickdown/internal/state"
)

// ExportInput contains parameters for the Export operation.
type ExportInput struct {
	Path string // optional, default: ~/.tickdown/exports/history-<timestamp>.json
}

// ExportOutput contains the result of the Export operation.
type ExportOutput struct {
	Title      string `json:"title"`
	Path       string `json:"path"`
	Count      int    `json:"count"`
	ExportedAt int64  `json:"exported_at"`
}

// Export writes the full, unfiltered history collection as indented JSON
// to a validated path. The live timer set is never exported.
func Export(c *state.Container, cfg *config.Config, input ExportInput) (*ExportOutput, error) {
	now := time.Now()

	exportPath := input.Path
	if exportPath == "" {
		dir, err := DefaultExportsDir()
		if err != nil {
			return nil, err
		}
		exportPath = filepath.Join(dir, fmt.Sprintf("history-%s.json", now.Format("20060102-150405")))
	}

	// Validate ALL paths (both user-provided and default) for safety.
	if err := ValidatePath(exportPath, cfg); err != nil {
		return nil, err
	}

	snap := c.Snapshot()
	payload, err := history.ExportJSON(snap.History)
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	dir := filepath.Dir(exportPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to create export directory: %w", err))
	}

	// Write to temp file first, then atomic rename to preserve any
	// existing file on failure.
	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to generate temp file name: %w", err))
	}
	tempPath := exportPath + "." + hex.EncodeToString(randBytes) + ".tmp"
	file, err := openFileNoFollow(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to create export file: %w", err))
	}

	success := false
	defer func() {
		if file != nil {
			file.Close()
		}
		if !success {
			os.Remove(tempPath)
		}
	}()

	if _, err := file.Write(payload); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to write export: %w", err))
	}
	if err := file.Close(); err != nil {
		file = nil
		return nil, errors.NewInternal(fmt.Errorf("failed to close export file: %w", err))
	}
	file = nil

	if err := os.Rename(tempPath, exportPath); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to finalize export file: %w", err))
	}
	success = true

	return &ExportOutput{
		Title:      history.ExportTitle,
		Path:       exportPath,
		Count:      len(snap.History),
		ExportedAt: now.Unix(),
	}, nil
}
