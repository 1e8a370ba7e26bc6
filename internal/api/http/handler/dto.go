package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/files-manager/internal/apierr"
	"github.com/dtroode/files-manager/internal/model"
)

// bindBody decodes a JSON body into dst. An empty body leaves dst zeroed so
// the service reports the missing fields.
func bindBody(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return apierr.NewErrInvalidBody(err)
	}
	return nil
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func newUserResponse(u model.User) userResponse {
	return userResponse{ID: u.ID.String(), Email: u.Email}
}

type fileResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	IsPublic bool   `json:"isPublic"`
	ParentID string `json:"parentId"`
}

func newFileResponse(f model.File) fileResponse {
	parentID := model.RootParentID
	if f.ParentID != nil {
		parentID = f.ParentID.String()
	}

	return fileResponse{
		ID:       f.ID.String(),
		UserID:   f.UserID.String(),
		Name:     f.Name,
		Type:     string(f.Type),
		IsPublic: f.IsPublic,
		ParentID: parentID,
	}
}

// parentRef accepts a parent id sent either as a string or as the number 0.
type parentRef string

func (p *parentRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = parentRef(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*p = parentRef(strconv.FormatInt(i, 10))
		return nil
	}
	*p = parentRef(n.String())
	return nil
}

type createFileRequest struct {
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	ParentID parentRef `json:"parentId"`
	IsPublic bool      `json:"isPublic"`
	Data     string    `json:"data"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type statusResponse struct {
	Redis bool `json:"redis"`
	DB    bool `json:"db"`
}

type statsResponse struct {
	Users int64 `json:"users"`
	Files int64 `json:"files"`
}
