package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-manager-api/internal/api/handler/router"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-manager-api/pkg/middleware"
)

const testRestaurant = "rest-1"

func ownerClaims() *domain.Claims {
	return &domain.Claims{UserID: 7, UserRoleID: domain.RoleOwner, UserRestaurants: map[string]int{testRestaurant: domain.RoleOwner}}
}

// staffClaims tem perfil global de proprietário (cadastro próprio) e é funcionário no restaurante de teste
func staffClaims() *domain.Claims {
	return &domain.Claims{UserID: 9, UserRoleID: domain.RoleOwner, UserRestaurants: map[string]int{testRestaurant: domain.RoleStaff}}
}

// serve monta o router com as rotas e injeta as claims como o AuthMiddleware faria
func serve(t *testing.T, routes []router.Route, claims *domain.Claims, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	rt := router.New(router.WithRoutes(routes...))
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
}

func assertAPIError(t *testing.T, rec *httptest.ResponseRecorder, code string) {
	t.Helper()
	var apiErr apiErrors.APIError
	decodeResponse(t, rec, &apiErr)
	assert.Equal(t, code, apiErr.Code)
	assert.Equal(t, apiErrors.StatusFor(code), rec.Code)
}

func TestParsePeriod(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		query     string
		wantStart time.Time
		wantEnd   time.Time
		wantErr   bool
	}{
		{
			name:      "Sem filtros usa o mês corrente",
			query:     "",
			wantStart: domain.MonthPeriod(now).Start,
			wantEnd:   domain.MonthPeriod(now).End,
		},
		{
			name:      "Mês informado",
			query:     "?month=2024-02",
			wantStart: domain.MonthPeriod(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)).Start,
			wantEnd:   domain.MonthPeriod(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)).End,
		},
		{
			name:      "Início e fim",
			query:     "?start=2024-01-10&end=2024-01-20",
			wantStart: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		{name: "Mês inválido", query: "?month=03/2024", wantErr: true},
		{name: "Apenas início", query: "?start=2024-01-10", wantErr: true},
		{name: "Fim anterior ao início", query: "?start=2024-01-20&end=2024-01-10", wantErr: true},
		{name: "Data mal formatada", query: "?start=10/01/2024&end=2024-01-20", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/reports"+tt.query, nil)

			period, err := parsePeriod(req, now)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.wantStart.Equal(period.Start))
			assert.True(t, tt.wantEnd.Equal(period.End))
		})
	}
}

func TestRestaurantScopedRoutes(t *testing.T) {
	routes := Dashboard(nil)

	t.Run("Sem autenticação", func(t *testing.T) {
		rec := serve(t, routes, nil, http.MethodGet, "/v1/restaurants/"+testRestaurant+"/dashboard", nil)
		assertAPIError(t, rec, apiErrors.ErrInvalidToken)
	})

	t.Run("Restaurante de outro usuário", func(t *testing.T) {
		rec := serve(t, routes, ownerClaims(), http.MethodGet, "/v1/restaurants/outro/dashboard", nil)
		assertAPIError(t, rec, apiErrors.ErrRestaurantAccess)
	})
}

func TestHealthcheck(t *testing.T) {
	rec := serve(t, Healthcheck(), nil, http.MethodGet, "/healthcheck", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}
