package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RootParentID is the wire form of the implicit top-level parent.
const RootParentID = "0"

// FilesPageSize is the number of records returned per listing page.
const FilesPageSize = 20

// FileStore defines persistence operations for file records.
type FileStore interface {
	Create(ctx context.Context, file File) (File, error)
	// GetByID looks a record up regardless of its owner.
	GetByID(ctx context.Context, id uuid.UUID) (File, error)
	GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (File, error)
	// ListByParent returns records of userID directly under parentID (nil
	// for root) in insertion order.
	ListByParent(ctx context.Context, userID uuid.UUID, parentID *uuid.UUID, limit, offset int) ([]File, error)
	SetPublic(ctx context.Context, id, userID uuid.UUID, isPublic bool) (File, error)
	Count(ctx context.Context) (int64, error)
}

// File represents a stored file or folder record.
type File struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      FileType
	IsPublic  bool
	ParentID  *uuid.UUID
	LocalPath string
	CreatedAt time.Time
}

// IsRoot reports whether the record sits at the top level.
func (f File) IsRoot() bool {
	return f.ParentID == nil
}

// FileType enumerates record kinds.
type FileType string

const (
	// FileTypeFolder is a container for other records; it has no content.
	FileTypeFolder FileType = "folder"
	// FileTypeFile is a plain file.
	FileTypeFile FileType = "file"
	// FileTypeImage is a file that gets thumbnails generated.
	FileTypeImage FileType = "image"
)

// Valid reports whether t is a known file type.
func (t FileType) Valid() bool {
	switch t {
	case FileTypeFolder, FileTypeFile, FileTypeImage:
		return true
	}
	return false
}

// HasContent reports whether records of this type carry stored bytes.
func (t FileType) HasContent() bool {
	return t == FileTypeFile || t == FileTypeImage
}

// CreateFileParams contains parameters to create a file record.
type CreateFileParams struct {
	UserID   uuid.UUID
	Name     string
	Type     string
	ParentID string
	IsPublic bool
	Data     string
}

// ListFilesParams contains listing filters.
type ListFilesParams struct {
	UserID   uuid.UUID
	ParentID string
	Page     int
}

// FileContent is the payload returned for a file's data.
type FileContent struct {
	Data        []byte
	ContentType string
}
