// animforge/api/handler_test.go
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"animforge/config"
	"animforge/render"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T, total int) (*gin.Engine, *config.Config, *render.Session, *render.Progress) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{AuthEnable: false, Verbose: true}
	sess, err := render.NewSession(false)
	require.NoError(t, err)
	t.Cleanup(func() { sess.Cleanup() })

	progress := render.NewProgress(os.Stderr, total)
	router := SetupRouter(sess, progress, cfg)
	return router, cfg, sess, progress
}

func TestHandleProgress(t *testing.T) {
	router, _, _, progress := setupTestRouter(t, 10)

	progress.Ack(0)
	progress.Ack(5)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/progress", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]int
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, 2, resp["completed"])
	assert.Equal(t, 10, resp["total"])
}

func TestHandleListFrames(t *testing.T) {
	router, _, sess, _ := setupTestRouter(t, 10)

	t.Run("empty session", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/frames", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"frames": [], "ext": "svg"}`, w.Body.String())
	})

	t.Run("frames in timeline order", func(t *testing.T) {
		sess.Register(8)
		sess.Register(0)
		sess.Register(4)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/frames", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"frames": [0, 4, 8], "ext": "svg"}`, w.Body.String())
	})
}

func TestHandleGetFrame(t *testing.T) {
	router, _, sess, _ := setupTestRouter(t, 10)

	require.NoError(t, os.WriteFile(sess.FramePath(3), []byte("<svg/>"), 0o644))
	sess.Register(3)

	t.Run("completed frame is served", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/frames/3", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "<svg/>", w.Body.String())
	})

	t.Run("pending frame is 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/frames/7", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("junk index is 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/frames/notanumber", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	router, cfg, _, _ := setupTestRouter(t, 10)

	t.Run("Auth disabled", func(t *testing.T) {
		cfg.AuthEnable = false
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/progress", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Auth enabled, no token", func(t *testing.T) {
		cfg.AuthEnable = true
		cfg.AuthKey = "secret"
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/progress", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Auth enabled, wrong token", func(t *testing.T) {
		cfg.AuthEnable = true
		cfg.AuthKey = "secret"
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/progress", nil)
		req.Header.Set("Authorization", "Bearer wrong-key")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Auth enabled, correct token", func(t *testing.T) {
		cfg.AuthEnable = true
		cfg.AuthKey = "secret"
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/progress", nil)
		req.Header.Set("Authorization", "Bearer secret")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("health endpoint skips auth", func(t *testing.T) {
		cfg.AuthEnable = true
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
