package handler

import (
	"net/http"

	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/consultant-dashboard-api/pkg/log"
)

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		token, err := service.LoginUser(&req)
		if err != nil {
			writeServiceError(w, r, err, "login")
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.RegisterRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := service.Register(&req)
		if err != nil {
			writeServiceError(w, r, err, "register")
			return
		}

		log.ForContext(r.Context()).WithField("user_id", user.ID).Info("register: usuário criado")
		writeJSON(w, r, http.StatusCreated, user)
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		user, err := service.GetUserProfile(claims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "me")
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}
