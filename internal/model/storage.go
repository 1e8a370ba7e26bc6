package model

import (
	"context"
	"io"
)

// Storage is the content store holding uploaded bytes and their derivatives.
type Storage interface {
	// Upload stores the reader's bytes under key and returns the location
	// to record on the file; Download, Exists and Delete accept it back.
	Upload(ctx context.Context, key string, reader io.Reader) (string, error)
	Download(ctx context.Context, location string) (io.ReadCloser, error)
	Delete(ctx context.Context, location string) error
	Exists(ctx context.Context, location string) (bool, error)
}
