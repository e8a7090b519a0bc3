package storage

import "context"

// StorageService defines the interface for media storage operations.
type StorageService interface {
	// UploadFile uploads a local file into the destination folder and
	// returns its public URL.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile deletes a stored file given its public ID.
	DeleteFile(ctx context.Context, publicID string) error
}
