package worker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
)

// Job validation failures. Their text is what ends up on the failed list.
var (
	ErrMissingUserID = errors.New("Missing userId")
	ErrMissingFileID = errors.New("Missing fileId")
	ErrFileNotFound  = errors.New("File not found")
)

const (
	stageValidate = "validate"
	stageLoad     = "load"
	stageDecode   = "decode"
	stageResize   = "resize"
)

// StageError tags a processing failure with the step it happened in.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage string, err error) error {
	return &StageError{Stage: stage, Err: err}
}

// Processor turns an uploaded image into its thumbnail variants.
type Processor struct {
	fileStore model.FileStore
	storage   model.Storage
	widths    []int
	logger    *logger.Logger
}

func NewProcessor(fileStore model.FileStore, storage model.Storage, logger *logger.Logger) *Processor {
	return &Processor{
		fileStore: fileStore,
		storage:   storage,
		widths:    model.ThumbnailWidths,
		logger:    logger,
	}
}

// Process generates every thumbnail width for the job's file. It succeeds
// only when all of them were written.
func (p *Processor) Process(ctx context.Context, job model.ThumbnailJob) error {
	if job.UserID == "" {
		return stageErr(stageValidate, ErrMissingUserID)
	}
	if job.FileID == "" {
		return stageErr(stageValidate, ErrMissingFileID)
	}

	file, err := p.loadFile(ctx, job)
	if err != nil {
		return err
	}

	src, err := p.storage.Download(ctx, file.LocalPath)
	if err != nil {
		return stageErr(stageLoad, fmt.Errorf("failed to read original: %w", err))
	}
	data, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		return stageErr(stageLoad, fmt.Errorf("failed to read original: %w", err))
	}

	img, format, err := decode(data)
	if err != nil {
		return stageErr(stageDecode, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, width := range p.widths {
		width := width
		g.Go(func() error {
			return p.writeThumbnail(gctx, img, format, file.LocalPath, width)
		})
	}
	if err := g.Wait(); err != nil {
		return stageErr(stageResize, err)
	}

	p.logger.Info("Worker: thumbnails generated",
		"file_id", file.ID,
		"user_id", file.UserID,
		"widths", p.widths)

	return nil
}

func (p *Processor) loadFile(ctx context.Context, job model.ThumbnailJob) (model.File, error) {
	userID, err := uuid.Parse(job.UserID)
	if err != nil {
		return model.File{}, stageErr(stageLoad, ErrFileNotFound)
	}
	fileID, err := uuid.Parse(job.FileID)
	if err != nil {
		return model.File{}, stageErr(stageLoad, ErrFileNotFound)
	}

	file, err := p.fileStore.GetByIDAndUser(ctx, fileID, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.File{}, stageErr(stageLoad, ErrFileNotFound)
		}
		return model.File{}, stageErr(stageLoad, fmt.Errorf("failed to get file: %w", err))
	}
	if file.LocalPath == "" {
		return model.File{}, stageErr(stageLoad, ErrFileNotFound)
	}

	return file, nil
}

func decode(data []byte) (image.Image, imaging.Format, error) {
	_, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to detect image format: %w", err)
	}

	format, err := imaging.FormatFromExtension(name)
	if err != nil {
		format = imaging.PNG
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode image: %w", err)
	}

	return img, format, nil
}

func (p *Processor) writeThumbnail(ctx context.Context, img image.Image, format imaging.Format, location string, width int) error {
	thumb := imaging.Resize(img, width, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, format); err != nil {
		return fmt.Errorf("failed to encode %dpx thumbnail: %w", width, err)
	}

	if _, err := p.storage.Upload(ctx, model.ThumbnailLocation(location, width), &buf); err != nil {
		return fmt.Errorf("failed to store %dpx thumbnail: %w", width, err)
	}

	return nil
}
