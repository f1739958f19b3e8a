package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/pkg/apiErrors"
)

type fakeValidator struct {
	claims *domain.Claims
	err    error
}

func (f fakeValidator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	claims := &domain.Claims{UserID: 7, UserRoleID: domain.RoleManager}

	tests := []struct {
		name       string
		path       string
		header     string
		validator  fakeValidator
		wantStatus int
	}{
		{name: "rota pública não exige token", path: "/v1/login", wantStatus: http.StatusNoContent},
		{name: "sem cabeçalho", path: "/v1/me", wantStatus: http.StatusUnauthorized},
		{name: "sem prefixo Bearer", path: "/v1/me", header: "abc", wantStatus: http.StatusUnauthorized},
		{name: "token inválido", path: "/v1/me", header: "Bearer abc", validator: fakeValidator{err: errors.New("bad")}, wantStatus: http.StatusUnauthorized},
		{name: "token válido", path: "/v1/me", header: "Bearer abc", validator: fakeValidator{claims: claims}, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.validator)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	handler := RoleMiddleware([]int{domain.RoleOwner})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	staff := &domain.Claims{UserID: 1, UserRoleID: domain.RoleStaff}
	req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, staff))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	owner := &domain.Claims{UserID: 2, UserRoleID: domain.RoleOwner}
	req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, owner))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRestaurantRole(t *testing.T) {
	// perfil global de proprietário, mas apenas funcionário no r1 e gerente no r2
	claims := &domain.Claims{
		UserID:          1,
		UserRoleID:      domain.RoleOwner,
		UserRestaurants: map[string]int{"r1": domain.RoleStaff, "r2": domain.RoleManager},
	}

	router := httprouter.New()
	router.Handler(http.MethodGet, "/v1/restaurants/:restaurant_id/dashboard", RestaurantMember()(okHandler()))
	router.Handler(http.MethodPost, "/v1/restaurants/:restaurant_id/members", RestaurantRole(domain.RoleOwner)(okHandler()))
	router.Handler(http.MethodGet, "/v1/restaurants/:restaurant_id/reports", RestaurantRole(domain.RoleOwner, domain.RoleManager)(okHandler()))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantCode   string
	}{
		{name: "Funcionário acessa rota de membros", method: http.MethodGet, path: "/v1/restaurants/r1/dashboard", wantStatus: http.StatusNoContent},
		{name: "Restaurante de outro usuário", method: http.MethodGet, path: "/v1/restaurants/r3/dashboard", wantStatus: http.StatusForbidden, wantCode: apiErrors.ErrRestaurantAccess},
		{name: "Funcionário não usa rota de proprietário mesmo com perfil global de proprietário", method: http.MethodPost, path: "/v1/restaurants/r1/members", wantStatus: http.StatusForbidden, wantCode: apiErrors.ErrInsufficientPrivilege},
		{name: "Funcionário não acessa relatórios", method: http.MethodGet, path: "/v1/restaurants/r1/reports", wantStatus: http.StatusForbidden, wantCode: apiErrors.ErrInsufficientPrivilege},
		{name: "Gerente acessa relatórios", method: http.MethodGet, path: "/v1/restaurants/r2/reports", wantStatus: http.StatusNoContent},
		{name: "Gerente não usa rota de proprietário", method: http.MethodPost, path: "/v1/restaurants/r2/members", wantStatus: http.StatusForbidden, wantCode: apiErrors.ErrInsufficientPrivilege},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, claims))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), tt.wantCode)
			}
		})
	}

	t.Run("Sem autenticação", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/restaurants/r1/dashboard", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAnyRestaurantOwner(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		wantStatus int
	}{
		{name: "Sem autenticação", wantStatus: http.StatusUnauthorized},
		{name: "Perfil global de proprietário sem restaurante", claims: &domain.Claims{UserID: 1, UserRoleID: domain.RoleOwner}, wantStatus: http.StatusForbidden},
		{name: "Apenas funcionário", claims: &domain.Claims{UserID: 2, UserRoleID: domain.RoleOwner, UserRestaurants: map[string]int{"r1": domain.RoleStaff}}, wantStatus: http.StatusForbidden},
		{name: "Proprietário de um restaurante", claims: &domain.Claims{UserID: 3, UserRestaurants: map[string]int{"r1": domain.RoleStaff, "r2": domain.RoleOwner}}, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
			if tt.claims != nil {
				req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, tt.claims))
			}
			rec := httptest.NewRecorder()

			AnyRestaurantOwner()(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/me", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("Origin", "http://evil.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLoggingMiddlewareKeepsCorrelationID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(CorrelationIDHeader, "abc-123")
	rec := httptest.NewRecorder()

	LoggingMiddleware()(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(CorrelationIDHeader))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
