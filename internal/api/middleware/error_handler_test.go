package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "routesmith.io/routesmith/internal/pkg/errors"
	"routesmith.io/routesmith/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

func errorTestRouter(err error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(err)
	})
	return r
}

func TestErrorHandler_AppError(t *testing.T) {
	r := errorTestRouter(apperrors.ErrTemplateNotFoundf(42))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), apperrors.CodeTemplateNotFound)
	assert.Contains(t, w.Body.String(), `"template_id":42`)
}

func TestErrorHandler_FieldErrors(t *testing.T) {
	r := errorTestRouter(apperrors.ErrValidationFailedf([]apperrors.FieldError{
		{Field: "name", Code: "REQUIRED", Message: "name is required"},
	}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field_errors"`)
	assert.Contains(t, w.Body.String(), `"name"`)
}

func TestErrorHandler_GenericError(t *testing.T) {
	r := errorTestRouter(errors.New("boom"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestErrorHandler_NoError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/ok", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
