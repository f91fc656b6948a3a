package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"sdc/internal/application/intake"
	intakedomain "sdc/internal/domain/intake"
	"sdc/internal/shared/logger"
)

// emptyContactRepo answers every lookup with the not-found sentinel.
type emptyContactRepo struct{}

func (emptyContactRepo) Create(context.Context, *intakedomain.ContactMessage) error { return nil }
func (emptyContactRepo) GetBySID(context.Context, string) (*intakedomain.ContactMessage, error) {
	return nil, intakedomain.ErrMessageNotFound
}
func (emptyContactRepo) List(context.Context, int, int) ([]*intakedomain.ContactMessage, int64, error) {
	return nil, 0, nil
}
func (emptyContactRepo) Update(context.Context, *intakedomain.ContactMessage) error {
	return intakedomain.ErrMessageNotFound
}
func (emptyContactRepo) Delete(context.Context, string) error {
	return intakedomain.ErrMessageNotFound
}

type emptyApplicationRepo struct{}

func (emptyApplicationRepo) Create(context.Context, *intakedomain.Application) error { return nil }
func (emptyApplicationRepo) GetBySID(context.Context, string) (*intakedomain.Application, error) {
	return nil, intakedomain.ErrApplicationNotFound
}
func (emptyApplicationRepo) List(context.Context, int, int) ([]*intakedomain.Application, int64, error) {
	return nil, 0, nil
}
func (emptyApplicationRepo) Update(context.Context, *intakedomain.Application) error {
	return intakedomain.ErrApplicationNotFound
}
func (emptyApplicationRepo) Delete(context.Context, string) error {
	return intakedomain.ErrApplicationNotFound
}

func newIntakeTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service := intake.NewService(emptyContactRepo{}, emptyApplicationRepo{}, nil, logger.NewLogger())
	handler := NewIntakeHandler(service, logger.NewLogger())

	r := gin.New()
	r.PATCH("/api/admin/contacts/:id/read", handler.MarkContactRead)
	r.GET("/api/admin/applications/:id", handler.GetApplication)
	r.DELETE("/api/admin/applications/:id", handler.DeleteApplication)
	return r
}

func TestIntakeHandler_MissingContactIsNotFound(t *testing.T) {
	r := newIntakeTestRouter(t)

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/contacts/msg_absent1/read", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIntakeHandler_MissingApplicationIsNotFound(t *testing.T) {
	r := newIntakeTestRouter(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/applications/app_absent1"},
		{http.MethodDelete, "/api/admin/applications/app_absent1"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestIntakeHandler_RejectsWrongIDPrefix(t *testing.T) {
	r := newIntakeTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/applications/msg_wrong1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
