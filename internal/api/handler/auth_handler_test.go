package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/restaurant-manager-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/restaurant-manager-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *authmocks.MockAuthenticator)
		wantStatus int
		wantCode   string
	}{
		{
			name: "Login com sucesso",
			body: `{"email":"ana@restaurante.com","password":"Senha@123"}`,
			setup: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().LoginUser(gomock.Any(), "ana@restaurante.com", "Senha@123").Return("token-1", nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Senha incorreta",
			body: `{"email":"ana@restaurante.com","password":"errada"}`,
			setup: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", authenticating.NewUserAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, 7, "Senha incorreta"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name:       "Corpo inválido",
			body:       `{"email":`,
			setup:      func(m *authmocks.MockAuthenticator) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := authmocks.NewMockAuthenticator(ctrl)
			tt.setup(service)

			rec := serve(t, Authentication(service), nil, http.MethodPost, "/v1/login", []byte(tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assertAPIError(t, rec, tt.wantCode)
				return
			}
			var resp TokenResponse
			decodeResponse(t, rec, &resp)
			assert.Equal(t, "token-1", resp.Token)
		})
	}
}

func TestRegister_IgnoraPapelInformado(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := authmocks.NewMockAuthenticator(ctrl)
	service.EXPECT().ValidatePasswordStrength("Senha@123").Return(nil)
	service.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
		assert.Zero(t, u.RoleID)
		u.ID = 11
		return u, nil
	})

	body := `{"name":"Ana","lastname":"Silva","email":"ana@restaurante.com","password":"Senha@123","role_id":1}`
	rec := serve(t, Authentication(service), nil, http.MethodPost, "/v1/register", []byte(body))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestChangePassword_OutroUsuario(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := authmocks.NewMockAuthenticator(ctrl)

	rec := serve(t, Authentication(service), staffClaims(), http.MethodPost, "/v1/users/7/change-password", []byte(`{}`))

	assertAPIError(t, rec, apiErrors.ErrInsufficientPrivilege)
}

func TestUserRoutes_RepassamSolicitante(t *testing.T) {
	denied := authenticating.NewUserAuthError(authenticating.ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, 9, "")

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setup      func(m *authmocks.MockAuthenticator)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "Editar perfil de outro usuário",
			method: http.MethodPut,
			path:   "/v1/users/7",
			body:   `{"name":"Outro"}`,
			setup: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().UpdateUser(gomock.Any(), 9, gomock.Any()).DoAndReturn(func(_ context.Context, _ int, req *domain.UpdateUserRequest) error {
					assert.Equal(t, 7, req.ID)
					return denied
				})
			},
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:   "Consultar usuário de outro restaurante",
			method: http.MethodGet,
			path:   "/v1/users/50",
			setup: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().GetUser(gomock.Any(), 9, 50).Return(nil, denied)
			},
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:   "Lista apenas usuários visíveis ao solicitante",
			method: http.MethodGet,
			path:   "/v1/users",
			setup: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().ListUser(gomock.Any(), 9).Return([]*domain.User{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Editar o próprio perfil",
			method: http.MethodPut,
			path:   "/v1/users/9",
			body:   `{"name":"Bia"}`,
			setup: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().UpdateUser(gomock.Any(), 9, gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := authmocks.NewMockAuthenticator(ctrl)
			tt.setup(service)

			rec := serve(t, User(service), staffClaims(), tt.method, tt.path, []byte(tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assertAPIError(t, rec, tt.wantCode)
			}
		})
	}
}

func TestGeneratePassword_OutroRestaurante(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := authmocks.NewMockAuthenticator(ctrl)
	service.EXPECT().GenerateStrongPassword(gomock.Any(), 9, 7).
		Return("", authenticating.NewUserAuthError(authenticating.ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, 9, ""))

	rec := serve(t, Authentication(service), staffClaims(), http.MethodPost, "/v1/users/7/generate-password", nil)

	assertAPIError(t, rec, apiErrors.ErrInsufficientPrivilege)
	assert.NotContains(t, rec.Body.String(), "password")
}
