package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/fintrak-api/internal/domain"
	"github.com/vfg2006/fintrak-api/internal/usecases/authenticating"
	"github.com/vfg2006/fintrak-api/pkg/apiErrors"
	"github.com/vfg2006/fintrak-api/pkg/log"
)

func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - Login")

		var creds domain.Credentials
		if !decodeBody(w, r, &creds) {
			return
		}

		user, err := service.Login(creds)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	})
}

func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	if authenticating.IsCredentialsError(err) {
		log.ForContext(r.Context()).WithField("user_login", "falha").Warn("Credenciais inválidas")
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Invalid credentials", nil)
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}
