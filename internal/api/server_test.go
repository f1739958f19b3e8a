package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/restaurant-manager-api/internal/config"
	"github.com/vfg2006/restaurant-manager-api/pkg/apiErrors"
)

func testConfig() *config.Config {
	return &config.Config{Server: config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"http://localhost:3000"}}}
}

func TestNewHandler_RegistraRotasSemConflito(t *testing.T) {
	assert.NotPanics(t, func() {
		NewHandler(testConfig(), Services{})
	})
}

func TestNewHandler(t *testing.T) {
	h := NewHandler(testConfig(), Services{})

	t.Run("Healthcheck é público", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Rotas protegidas exigem token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/restaurants/r1/dashboard", nil))

		assert.Equal(t, apiErrors.StatusFor(apiErrors.ErrInvalidToken), rec.Code)
	})
}

func TestNew_ShutdownGracePadrao(t *testing.T) {
	srv, err := New(testConfig(), Services{})

	assert.NoError(t, err)
	assert.Equal(t, "localhost:0", srv.httpServer.Addr)
	assert.Equal(t, "15s", srv.shutdownGrace.String())
}
