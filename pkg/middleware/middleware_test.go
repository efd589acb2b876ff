package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fintrak-api/internal/domain"
	"github.com/vfg2006/fintrak-api/internal/usecases/authenticating"
	"github.com/vfg2006/fintrak-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/fintrak-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := UserFromContext(r.Context())
		if ok {
			w.Header().Set("X-User", claims.UserID)
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		header     string
		setup      func(m *mocks.MockAuthenticator)
		wantStatus int
		wantUser   string
	}{
		{
			name:       "rota pública",
			method:     http.MethodPost,
			path:       "/api/auth",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "preflight passa sem token",
			method:     http.MethodOptions,
			path:       "/api/financial-data",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "sem cabeçalho",
			method:     http.MethodGet,
			path:       "/api/financial-data",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "sem Bearer",
			method:     http.MethodGet,
			path:       "/api/financial-data",
			header:     "abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "token inválido",
			method: http.MethodGet,
			path:   "/api/financial-data",
			header: "Bearer ruim",
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("ruim").Return(nil, authenticating.ErrInvalidToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "token válido",
			method: http.MethodGet,
			path:   "/api/financial-data",
			header: "Bearer bom",
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("bom").Return(&domain.Claims{UserID: "46429020"}, nil)
			},
			wantStatus: http.StatusNoContent,
			wantUser:   "46429020",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			if tt.setup != nil {
				tt.setup(auth)
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUser, rec.Header().Get("X-User"))
		})
	}
}

func TestCors(t *testing.T) {
	t.Run("preflight", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Cors()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/sales-records", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("requisição comum segue adiante", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Cors()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/sales-records", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("falhou")
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(LogPanicMiddleware()(panicking)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"falhou"`)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}
