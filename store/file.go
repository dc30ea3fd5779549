package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"finaura/api/logger"
	"finaura/api/models"

	"go.uber.org/zap"
)

// File reads the snapshot from a JSON document on every call, so edits to the file
// show up on the next request.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Snapshot(_ context.Context) (*models.Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		logger.Get().Error("failed to read mock data",
			zap.String("path", f.path),
			zap.Error(err))
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s not found", models.ErrMissingProfileData, f.path)
		}
		return nil, fmt.Errorf("%w: reading %s: %v", models.ErrMissingProfileData, f.path, err)
	}

	var record SnapshotRecord
	if err := json.Unmarshal(data, &record); err != nil {
		logger.Get().Error("failed to parse mock data",
			zap.String("path", f.path),
			zap.Error(err))
		return nil, fmt.Errorf("%w: parsing %s: %v", models.ErrMissingProfileData, f.path, err)
	}

	return record.ToSnapshot()
}
