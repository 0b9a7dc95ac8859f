package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"w3liquor_backend/internal/authz"
)

type stubDirectory struct {
	admins map[string]bool
	err    error
}

func (d stubDirectory) HasAdminRecord(_ context.Context, userID string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	return d.admins[userID], nil
}

func adminTestRouter(dir authz.Directory, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected",
		func(c *gin.Context) { c.Set("user_id", userID) },
		RequireAdmin(authz.NewResolver(dir)),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"secret": "liquors"}) },
	)
	return r
}

func TestRequireAdmin(t *testing.T) {
	t.Run("admin passes through", func(t *testing.T) {
		r := adminTestRouter(stubDirectory{admins: map[string]bool{"u1": true}}, "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "liquors")
	})

	t.Run("non-admin never sees protected content", func(t *testing.T) {
		r := adminTestRouter(stubDirectory{admins: map[string]bool{}}, "u1")
		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.NotContains(t, w.Body.String(), "liquors")
			assert.Contains(t, w.Body.String(), "auth/admin-only")
		}
	})

	t.Run("directory error fails closed", func(t *testing.T) {
		r := adminTestRouter(stubDirectory{err: errors.New("timeout")}, "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.NotContains(t, w.Body.String(), "liquors")
	})

	t.Run("missing identity denies", func(t *testing.T) {
		r := adminTestRouter(stubDirectory{admins: map[string]bool{"": true}}, "")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
