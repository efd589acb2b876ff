package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/fintrak-api/internal/domain"
	authmocks "github.com/vfg2006/fintrak-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/fintrak-api/internal/usecases/persisting/mocks"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T) (http.Handler, *authmocks.MockAuthenticator, *mocks.MockFinancialDataService) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)
	financial := mocks.NewMockFinancialDataService(ctrl)

	h := NewHandler(Services{
		Authenticator: auth,
		FinancialData: financial,
		Inventory:     mocks.NewMockInventoryService(ctrl),
		Sales:         mocks.NewMockSalesService(ctrl),
	})
	return h, auth, financial
}

func TestHandler_RejectsMissingToken(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/financial-data", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandler_PreflightWithoutToken(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/inventory-batches", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandler_AuthenticatedRequest(t *testing.T) {
	h, auth, financial := newTestHandler(t)
	auth.EXPECT().ValidateToken("tok").Return(&domain.Claims{UserID: "46429020"}, nil)
	financial.EXPECT().GetFinancialData(gomock.Any(), "46429020").Return([]byte(`{"notes5":1}`), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/financial-data", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"notes5":1}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}

func TestHandler_UnsupportedMethod(t *testing.T) {
	h, auth, _ := newTestHandler(t)
	auth.EXPECT().ValidateToken("tok").Return(&domain.Claims{UserID: "46429020"}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/api/financial-data", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"Method not allowed"`)
}
