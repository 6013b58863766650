package service

import (
	"context"
	"io"
)

// ObjectStorage persists binary artifacts and hands back public URLs.
type ObjectStorage interface {
	// Upload stores data under prefix and returns its public URL.
	Upload(ctx context.Context, prefix string, data []byte, contentType string) (string, error)

	// Open streams a stored object by key.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Fetch resolves a public URL produced by Upload, or any http(s) URL, to its bytes.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
