package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/dtroode/files-manager/internal/logger"
)

func TestLogging_Handle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	r := gin.New()
	r.Use(NewLogging(logger.NewWithWriter(&buf, -4)).Handle())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok", "/missing", "/boom"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	out := buf.String()
	assert.Contains(t, out, `msg="HTTP request completed" method=GET path=/ok status=200`)
	assert.Contains(t, out, `level=WARN msg="HTTP request rejected" method=GET path=/missing status=404`)
	assert.Contains(t, out, `level=ERROR msg="HTTP request failed" method=GET path=/boom status=500`)
}
