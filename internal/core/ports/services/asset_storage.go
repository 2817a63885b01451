package services

import (
	"context"
	"io"
)

// AssetReference is one binary asset handed to the storage collaborator:
// a readable body plus the metadata needed to store it.
type AssetReference struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

// AssetStorageSvcFacade is the external asset storage collaborator. The core
// consumes it through this narrow interface; the S3 adapter implements it.
type AssetStorageSvcFacade interface {
	// UploadAsset stores the asset and returns a stable public URL for it.
	// An empty URL with a nil error is treated as a failed upload by callers.
	UploadAsset(ctx context.Context, asset AssetReference) (string, error)
}
