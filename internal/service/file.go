package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"math"
	"mime"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/dtroode/files-manager/internal/apierr"
	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
)

var errQueueNotConfigured = errors.New("thumbnail queue is not configured")

// Files manages the file and folder hierarchy and the stored content.
type Files struct {
	fileStore model.FileStore
	storage   model.Storage
	queue     model.JobQueue
	logger    *logger.Logger
}

// NewFiles creates the file service. queue may be nil, in which case image
// uploads are refused.
func NewFiles(fileStore model.FileStore, storage model.Storage, queue model.JobQueue, logger *logger.Logger) *Files {
	return &Files{
		fileStore: fileStore,
		storage:   storage,
		queue:     queue,
		logger:    logger,
	}
}

func isRootParent(parentID string) bool {
	return parentID == "" || parentID == model.RootParentID
}

// Create validates params, stores content for file and image types and
// inserts the record. Images are queued for thumbnail generation.
func (f *Files) Create(ctx context.Context, params model.CreateFileParams) (model.File, error) {
	if params.Name == "" {
		return model.File{}, apierr.NewErrMissingField("name")
	}

	fileType := model.FileType(params.Type)
	if !fileType.Valid() {
		return model.File{}, apierr.NewErrMissingField("type")
	}

	var content []byte
	if fileType.HasContent() {
		if params.Data == "" {
			return model.File{}, apierr.NewErrMissingField("data")
		}
		decoded, err := base64.StdEncoding.DecodeString(params.Data)
		if err != nil {
			return model.File{}, apierr.NewErrMissingField("data")
		}
		content = decoded
	}

	parentID, err := f.resolveParent(ctx, params.ParentID)
	if err != nil {
		return model.File{}, err
	}

	if fileType == model.FileTypeImage && f.queue == nil {
		f.logger.Error("File service: image upload without a queue",
			"user_id", params.UserID)
		return model.File{}, apierr.NewErrInternal(errQueueNotConfigured)
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return model.File{}, apierr.NewErrInternal(fmt.Errorf("failed to generate file id: %w", err))
	}

	record := model.File{
		ID:        id,
		UserID:    params.UserID,
		Name:      params.Name,
		Type:      fileType,
		IsPublic:  params.IsPublic,
		ParentID:  parentID,
		CreatedAt: time.Now().UTC(),
	}

	if fileType.HasContent() {
		location, err := f.writeContent(ctx, content)
		if err != nil {
			f.logger.Error("File service: failed to write content",
				"user_id", params.UserID,
				"error", err.Error())
			return model.File{}, apierr.NewErrInternal(err)
		}
		record.LocalPath = location
	}

	saved, err := f.fileStore.Create(ctx, record)
	if err != nil {
		f.logger.Error("File service: failed to create file",
			"user_id", params.UserID,
			"error", err.Error())
		if record.LocalPath != "" {
			if delErr := f.storage.Delete(ctx, record.LocalPath); delErr != nil {
				f.logger.Warn("File service: failed to remove orphaned content",
					"path", record.LocalPath,
					"error", delErr.Error())
			}
		}
		return model.File{}, apierr.NewErrInternal(fmt.Errorf("failed to create file: %w", err))
	}

	if saved.Type == model.FileTypeImage {
		job := model.ThumbnailJob{UserID: saved.UserID.String(), FileID: saved.ID.String()}
		if err := f.queue.Enqueue(ctx, job); err != nil {
			f.logger.Error("File service: failed to enqueue thumbnail job",
				"user_id", saved.UserID,
				"file_id", saved.ID,
				"error", err.Error())
		}
	}

	f.logger.Info("File service: file created",
		"user_id", saved.UserID,
		"file_id", saved.ID,
		"type", saved.Type)

	return saved, nil
}

func (f *Files) resolveParent(ctx context.Context, raw string) (*uuid.UUID, error) {
	if isRootParent(raw) {
		return nil, nil
	}

	parentID, err := uuid.Parse(raw)
	if err != nil {
		return nil, apierr.NewErrParentNotFound()
	}

	parent, err := f.fileStore.GetByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, apierr.NewErrParentNotFound()
		}
		f.logger.Error("File service: failed to get parent",
			"parent_id", parentID,
			"error", err.Error())
		return nil, apierr.NewErrInternal(fmt.Errorf("failed to get parent: %w", err))
	}

	if parent.Type != model.FileTypeFolder {
		return nil, apierr.NewErrParentNotFolder()
	}

	return &parent.ID, nil
}

func (f *Files) writeContent(ctx context.Context, content []byte) (string, error) {
	contentID, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate content id: %w", err)
	}

	location, err := f.storage.Upload(ctx, contentID.String(), bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("failed to upload content: %w", err)
	}

	return location, nil
}

// Get returns a record owned by userID.
func (f *Files) Get(ctx context.Context, userID uuid.UUID, fileID string) (model.File, error) {
	id, err := uuid.Parse(fileID)
	if err != nil {
		return model.File{}, apierr.NewErrNotFound()
	}

	file, err := f.fileStore.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.File{}, apierr.NewErrNotFound()
		}
		f.logger.Error("File service: failed to get file",
			"user_id", userID,
			"file_id", id,
			"error", err.Error())
		return model.File{}, apierr.NewErrInternal(fmt.Errorf("failed to get file: %w", err))
	}

	return file, nil
}

// List returns one page of a user's records directly under a parent.
func (f *Files) List(ctx context.Context, params model.ListFilesParams) ([]model.File, error) {
	page := max(params.Page, 0)
	if page > math.MaxInt/model.FilesPageSize {
		return []model.File{}, nil
	}

	var parentID *uuid.UUID
	if !isRootParent(params.ParentID) {
		id, err := uuid.Parse(params.ParentID)
		if err != nil {
			return []model.File{}, nil
		}
		parentID = &id
	}

	files, err := f.fileStore.ListByParent(ctx, params.UserID, parentID, model.FilesPageSize, page*model.FilesPageSize)
	if err != nil {
		f.logger.Error("File service: failed to list files",
			"user_id", params.UserID,
			"error", err.Error())
		return nil, apierr.NewErrInternal(fmt.Errorf("failed to list files: %w", err))
	}
	if files == nil {
		files = []model.File{}
	}

	return files, nil
}

// SetPublic changes the visibility of a record owned by userID.
func (f *Files) SetPublic(ctx context.Context, userID uuid.UUID, fileID string, isPublic bool) (model.File, error) {
	id, err := uuid.Parse(fileID)
	if err != nil {
		return model.File{}, apierr.NewErrNotFound()
	}

	file, err := f.fileStore.SetPublic(ctx, id, userID, isPublic)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.File{}, apierr.NewErrNotFound()
		}
		f.logger.Error("File service: failed to update visibility",
			"user_id", userID,
			"file_id", id,
			"error", err.Error())
		return model.File{}, apierr.NewErrInternal(fmt.Errorf("failed to update visibility: %w", err))
	}

	f.logger.Info("File service: visibility changed",
		"user_id", userID,
		"file_id", id,
		"is_public", isPublic)

	return file, nil
}

// GetContent returns the bytes of a file or one of its thumbnails. viewerID
// is uuid.Nil for anonymous requests; private files are only served to
// their owner.
func (f *Files) GetContent(ctx context.Context, viewerID uuid.UUID, fileID, size string) (model.FileContent, error) {
	id, err := uuid.Parse(fileID)
	if err != nil {
		return model.FileContent{}, apierr.NewErrNotFound()
	}

	file, err := f.fileStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.FileContent{}, apierr.NewErrNotFound()
		}
		f.logger.Error("File service: failed to get file",
			"file_id", id,
			"error", err.Error())
		return model.FileContent{}, apierr.NewErrInternal(fmt.Errorf("failed to get file: %w", err))
	}

	if file.Type == model.FileTypeFolder {
		return model.FileContent{}, apierr.NewErrFolderHasNoContent()
	}

	if !file.IsPublic && (viewerID == uuid.Nil || viewerID != file.UserID) {
		return model.FileContent{}, apierr.NewErrNotFound()
	}

	location := file.LocalPath
	if size != "" {
		width, err := strconv.Atoi(size)
		if err != nil || !slices.Contains(model.ThumbnailWidths, width) {
			return model.FileContent{}, apierr.NewErrNotFound()
		}
		location = model.ThumbnailLocation(file.LocalPath, width)
	}

	data, err := f.readContent(ctx, location)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.FileContent{}, apierr.NewErrNotFound()
		}
		f.logger.Error("File service: failed to read content",
			"file_id", id,
			"error", err.Error())
		return model.FileContent{}, apierr.NewErrInternal(err)
	}

	return model.FileContent{
		Data:        data,
		ContentType: contentType(file.Name, data),
	}, nil
}

func (f *Files) readContent(ctx context.Context, location string) ([]byte, error) {
	exists, err := f.storage.Exists(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to check content: %w", err)
	}
	if !exists {
		return nil, model.ErrNotFound
	}

	rc, err := f.storage.Download(ctx, location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	return data, nil
}

func contentType(name string, data []byte) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return mimetype.Detect(data).String()
}
