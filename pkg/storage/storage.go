package storage

import "io"

// Storage persists uploaded file bytes and returns the stored reference.
// The core only ever keeps the reference; the bytes live with the
// collaborator (S3 in production, local disk in development).
type Storage interface {
	Store(filename string, data io.Reader) (string, error)
}
