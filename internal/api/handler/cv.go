package handler

import (
	"net/http"

	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/profiling"
)

func GetCV(service profiling.Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		profile, err := service.GetProfile(claims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "cv: buscar")
			return
		}
		writeJSON(w, r, http.StatusOK, profile)
	}
}

func SaveCV(service profiling.Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var profile domain.CVProfile
		if !decodeBody(w, r, &profile) {
			return
		}

		saved, err := service.SaveProfile(claims.UserID, &profile)
		if err != nil {
			writeServiceError(w, r, err, "cv: salvar")
			return
		}
		writeJSON(w, r, http.StatusOK, saved)
	}
}

func DeleteCV(service profiling.Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		if err := service.DeleteProfile(claims.UserID); err != nil {
			writeServiceError(w, r, err, "cv: remover")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
