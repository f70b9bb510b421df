package entity

import (
	"time"

	"github.com/google/uuid"
)

// File is the metadata record for an uploaded file. The bytes themselves live
// in the blob bucket under StorageKey; the database only tracks ownership and
// descriptive attributes.
type File struct {
	ID          uuid.UUID // The unique identifier for the file record.
	AccountID   uuid.UUID // The account that uploaded and owns the file.
	Name        string    // Original filename as submitted by the client.
	ContentType string    // MIME type reported at upload time.
	Size        int64     // Size of the stored object in bytes.
	StorageKey  string    // Key of the object inside the blob bucket.
	CreatedAt   time.Time // Timestamp of when the file was uploaded.
}
