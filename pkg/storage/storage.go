package storage

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/saihein2480/au-connect/config"
)

// Store saves uploaded images and returns the generated filename under which
// they are later served. The document referencing the file is only written
// after Save succeeds, so a failed upload never leaves a dangling reference
// (the reverse — an orphaned file after a failed document write — is
// accepted and not compensated).
type Store interface {
	Save(fh *multipart.FileHeader) (string, error)
}

// New builds the blob store selected by configuration.
func New(cfg *config.UploadsConfig) (Store, error) {
	switch cfg.Backend {
	case "minio":
		return newMinioStore(cfg)
	default:
		return NewLocalStore(cfg.Dir), nil
	}
}

// uploadName derives the stored filename: epoch millis plus the original
// base name, matching the public URL scheme /uploads/{name}.
func uploadName(fh *multipart.FileHeader) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(fh.Filename))
}
