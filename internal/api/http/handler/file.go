package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/files-manager/internal/apierr"
	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
)

// FileService defines operations on the file hierarchy.
type FileService interface {
	Create(ctx context.Context, params model.CreateFileParams) (model.File, error)
	Get(ctx context.Context, userID uuid.UUID, fileID string) (model.File, error)
	List(ctx context.Context, params model.ListFilesParams) ([]model.File, error)
	SetPublic(ctx context.Context, userID uuid.UUID, fileID string, isPublic bool) (model.File, error)
	GetContent(ctx context.Context, viewerID uuid.UUID, fileID, size string) (model.FileContent, error)
}

// File handles the /files endpoints.
type File struct {
	fileService    FileService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewFile(fileService FileService, contextManager model.ContextManager, logger *logger.Logger) *File {
	return &File{
		fileService:    fileService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *File) userID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		handleError(c, apierr.NewErrUnauthorized())
	}
	return userID, ok
}

func (h *File) Create(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req createFileRequest
	if err := bindBody(c, &req); err != nil {
		h.logger.Debug("File handler: unreadable body",
			"user_id", userID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	file, err := h.fileService.Create(c.Request.Context(), model.CreateFileParams{
		UserID:   userID,
		Name:     req.Name,
		Type:     req.Type,
		ParentID: string(req.ParentID),
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newFileResponse(file))
}

func (h *File) Get(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	file, err := h.fileService.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newFileResponse(file))
}

// parsePage maps the page query to a non-negative index. Values past the
// int range stay out of range so they list nothing.
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	switch {
	case errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-"):
		return math.MaxInt
	case err != nil || page < 0:
		return 0
	}
	return page
}

func (h *File) List(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	page := parsePage(c.Query("page"))

	files, err := h.fileService.List(c.Request.Context(), model.ListFilesParams{
		UserID:   userID,
		ParentID: c.DefaultQuery("parentId", model.RootParentID),
		Page:     page,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	resp := make([]fileResponse, 0, len(files))
	for _, f := range files {
		resp = append(resp, newFileResponse(f))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *File) Publish(c *gin.Context) {
	h.setPublic(c, true)
}

func (h *File) Unpublish(c *gin.Context) {
	h.setPublic(c, false)
}

func (h *File) setPublic(c *gin.Context, isPublic bool) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	file, err := h.fileService.SetPublic(c.Request.Context(), userID, c.Param("id"), isPublic)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newFileResponse(file))
}

// Data serves file content. Authentication is optional here; anonymous
// viewers only see public files.
func (h *File) Data(c *gin.Context) {
	viewerID, _ := h.contextManager.GetUserIDFromContext(c.Request.Context())

	content, err := h.fileService.GetContent(c.Request.Context(), viewerID, c.Param("id"), c.Query("size"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.Data(http.StatusOK, content.ContentType, content.Data)
}
