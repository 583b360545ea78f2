package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-editor/internal/enhance"
	"resume-editor/internal/health"
	"resume-editor/internal/resumes"
	"resume-editor/internal/shared/config"
)

func newTestEngine(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := resumes.NewStore(nil)
	return NewRouter(RouterDeps{
		Config:         cfg,
		EnhanceHandler: enhance.NewHandler(enhance.NewService(enhance.ChooserFunc(func(int) int { return 0 }), 0)),
		ResumeHandler:  resumes.NewHandler(store),
		HealthHandler:  health.NewHandler(health.NewService(store)),
	})
}

func TestAddr(t *testing.T) {
	assert.Equal(t, ":8000", Addr(""))
	assert.Equal(t, ":9090", Addr("9090"))
	assert.Equal(t, ":7000", Addr(":7000"))
}

func TestRouterServesRoutesWithRequestID(t *testing.T) {
	r := newTestEngine(config.Config{CORSAllowOrigin: []string{"http://localhost:3000"}})

	for _, path := range []string{"/", "/health", "/resumes", "/metrics"} {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, resp.Code, path)
		assert.NotEmpty(t, resp.Header().Get("X-Request-Id"), path)
	}
}

func TestRouterRateLimitsEnhance(t *testing.T) {
	r := newTestEngine(config.Config{EnhanceRate: 0.001, EnhanceBurst: 1})
	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/ai-enhance", strings.NewReader(`{"section":"skills","content":"Go"}`))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		return resp.Code
	}

	assert.Equal(t, http.StatusOK, post())
	assert.Equal(t, http.StatusTooManyRequests, post())
}

func TestRouterCORSPreflight(t *testing.T) {
	r := newTestEngine(config.Config{CORSAllowOrigin: []string{"http://localhost:3000"}})
	req := httptest.NewRequest(http.MethodOptions, "/save-resume", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, "http://localhost:3000", resp.Header().Get("Access-Control-Allow-Origin"))
}
