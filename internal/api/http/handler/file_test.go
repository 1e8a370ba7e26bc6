package handler

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/files-manager/internal/apierr"
	"github.com/dtroode/files-manager/internal/mocks"
	"github.com/dtroode/files-manager/internal/model"
	"github.com/dtroode/files-manager/internal/testutil"
)

func newFileEngine(h *File) *gin.Engine {
	gin.SetMode(gin.TestMode)

	e := gin.New()
	e.POST("/files", h.Create)
	e.GET("/files", h.List)
	e.GET("/files/:id", h.Get)
	e.PUT("/files/:id/publish", h.Publish)
	e.PUT("/files/:id/unpublish", h.Unpublish)
	e.GET("/files/:id/data", h.Data)
	return e
}

func do(e *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestFile_Create(t *testing.T) {
	userID := uuid.New()
	fileID := uuid.New()

	svc := mocks.NewFileService(t)
	cm := mocks.NewContextManager(t)

	cm.On("GetUserIDFromContext", mock.Anything).Return(userID, true)
	svc.On("Create", mock.Anything, model.CreateFileParams{
		UserID:   userID,
		Name:     "notes.txt",
		Type:     "file",
		ParentID: "0",
		Data:     "aGVsbG8=",
	}).Return(model.File{ID: fileID, UserID: userID, Name: "notes.txt", Type: model.FileTypeFile}, nil)

	e := newFileEngine(NewFile(svc, cm, testutil.MakeNoopLogger()))

	w := do(e, http.MethodPost, "/files", `{"name":"notes.txt","type":"file","parentId":0,"data":"aGVsbG8="}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":"`+fileID.String()+`","userId":"`+userID.String()+`","name":"notes.txt","type":"file","isPublic":false,"parentId":"0"}`, w.Body.String())
}

func TestFile_Create_ValidationError(t *testing.T) {
	userID := uuid.New()

	svc := mocks.NewFileService(t)
	cm := mocks.NewContextManager(t)

	cm.On("GetUserIDFromContext", mock.Anything).Return(userID, true)
	svc.On("Create", mock.Anything, mock.AnythingOfType("model.CreateFileParams")).
		Return(model.File{}, apierr.NewErrMissingField("name"))

	e := newFileEngine(NewFile(svc, cm, testutil.MakeNoopLogger()))

	w := do(e, http.MethodPost, "/files", `{"type":"folder"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing name"}`, w.Body.String())
}

func TestFile_Create_MalformedBody(t *testing.T) {
	userID := uuid.New()

	svc := mocks.NewFileService(t)
	cm := mocks.NewContextManager(t)

	cm.On("GetUserIDFromContext", mock.Anything).Return(userID, true)

	e := newFileEngine(NewFile(svc, cm, testutil.MakeNoopLogger()))

	for _, body := range []string{
		`{"name":"a.txt","type":"file","isPublic":"true","data":"aGk="}`,
		`{"name":"a.txt",`,
	} {
		w := do(e, http.MethodPost, "/files", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
	}
}

func TestFile_Create_EmptyBody(t *testing.T) {
	userID := uuid.New()

	svc := mocks.NewFileService(t)
	cm := mocks.NewContextManager(t)

	cm.On("GetUserIDFromContext", mock.Anything).Return(userID, true)
	svc.On("Create", mock.Anything, model.CreateFileParams{UserID: userID}).
		Return(model.File{}, apierr.NewErrMissingField("name"))

	e := newFileEngine(NewFile(svc, cm, testutil.MakeNoopLogger()))

	w := do(e, http.MethodPost, "/files", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing name"}`, w.Body.String())
}

func TestFile_RequiresUser(t *testing.T) {
	svc := mocks.NewFileService(t)
	cm := mocks.NewContextManager(t)

	cm.On("GetUserIDFromContext", mock.Anything).Return(uuid.Nil, false)

	e := newFileEngine(NewFile(svc, cm, testutil.MakeNoopLogger()))

	w := do(e, http.MethodGet, "/files/abc", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}

func TestFile_List(t *testing.T) {
	userID := uuid.New()
	parentID := uuid.New()

	tests := []struct {
		name   string
		target string
		want   model.ListFilesParams
	}{
		{
			name:   "defaults",
			target: "/files",
			want:   model.ListFilesParams{UserID: userID, ParentID: "0", Page: 0},
		},
		{
			name:   "negative page",
			target: "/files?page=-3",
			want:   model.ListFilesParams{UserID: userID, ParentID: "0", Page: 0},
		},
		{
			name:   "non numeric page",
			target: "/files?page=two",
			want:   model.ListFilesParams{UserID: userID, ParentID: "0", Page: 0},
		},
		{
			name:   "page past int range",
			target: "/files?page=99999999999999999999999",
			want:   model.ListFilesParams{UserID: userID, ParentID: "0", Page: math.MaxInt},
		},
		{
			name:   "negative page past int range",
			target: "/files?page=-99999999999999999999999",
			want:   model.ListFilesParams{UserID: userID, ParentID: "0", Page: 0},
		},
		{
			name:   "parent and page",
			target: "/files?parentId=" + parentID.String() + "&page=2",
			want:   model.ListFilesParams{UserID: userID, ParentID: parentID.String(), Page: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewFileService(t)
			cm := mocks.NewContextManager(t)

			cm.On("GetUserIDFromContext", mock.Anything).Return(userID, true)
			svc.On("List", mock.Anything, tt.want).Return(nil, nil)

			e := newFileEngine(NewFile(svc, cm, testutil.MakeNoopLogger()))

			w := do(e, http.MethodGet, tt.target, "")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `[]`, w.Body.String())
		})
	}
}

func TestFile_List_RendersChildren(t *testing.T) {
	userID := uuid.New()
	parentID := uuid.New()
	childID := uuid.New()

	svc := mocks.NewFileService(t)
	cm := mocks.NewContextManager(t)

	cm.On("GetUserIDFromContext", mock.Anything).Return(userID, true)
	svc.On("List", mock.Anything, mock.AnythingOfType("model.ListFilesParams")).Return([]model.File{
		{ID: childID, UserID: userID, Name: "a.png", Type: model.FileTypeImage, IsPublic: true, ParentID: &parentID},
	}, nil)

	e := newFileEngine(NewFile(svc, cm, testutil.MakeNoopLogger()))

	w := do(e, http.MethodGet, "/files?parentId="+parentID.String(), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"`+childID.String()+`","userId":"`+userID.String()+`","name":"a.png","type":"image","isPublic":true,"parentId":"`+parentID.String()+`"}]`, w.Body.String())
}

func TestFile_Publish(t *testing.T) {
	userID := uuid.New()
	fileID := uuid.New()

	svc := mocks.NewFileService(t)
	cm := mocks.NewContextManager(t)

	cm.On("GetUserIDFromContext", mock.Anything).Return(userID, true)
	svc.On("SetPublic", mock.Anything, userID, fileID.String(), true).
		Return(model.File{ID: fileID, UserID: userID, Name: "f", Type: model.FileTypeFile, IsPublic: true}, nil)
	svc.On("SetPublic", mock.Anything, userID, "missing", false).
		Return(model.File{}, apierr.NewErrNotFound())

	e := newFileEngine(NewFile(svc, cm, testutil.MakeNoopLogger()))

	w := do(e, http.MethodPut, "/files/"+fileID.String()+"/publish", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isPublic":true`)

	w = do(e, http.MethodPut, "/files/missing/unpublish", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestFile_Data(t *testing.T) {
	fileID := uuid.New()

	t.Run("anonymous", func(t *testing.T) {
		svc := mocks.NewFileService(t)
		cm := mocks.NewContextManager(t)

		cm.On("GetUserIDFromContext", mock.Anything).Return(uuid.Nil, false)
		svc.On("GetContent", mock.Anything, uuid.Nil, fileID.String(), "250").
			Return(model.FileContent{Data: []byte("png-bytes"), ContentType: "image/png"}, nil)

		e := newFileEngine(NewFile(svc, cm, testutil.MakeNoopLogger()))

		w := do(e, http.MethodGet, "/files/"+fileID.String()+"/data?size=250", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, "png-bytes", w.Body.String())
	})

	t.Run("folder", func(t *testing.T) {
		viewer := uuid.New()
		svc := mocks.NewFileService(t)
		cm := mocks.NewContextManager(t)

		cm.On("GetUserIDFromContext", mock.Anything).Return(viewer, true)
		svc.On("GetContent", mock.Anything, viewer, fileID.String(), "").
			Return(model.FileContent{}, apierr.NewErrFolderHasNoContent())

		e := newFileEngine(NewFile(svc, cm, testutil.MakeNoopLogger()))

		w := do(e, http.MethodGet, "/files/"+fileID.String()+"/data", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"A folder doesn't have content"}`, w.Body.String())
	})
}
