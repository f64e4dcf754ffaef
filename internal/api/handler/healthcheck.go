package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger é satisfeito pela conexão com o banco e pelo cliente do redis
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapta uma função comum a Pinger
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// HealthcheckHandler responde 503 quando alguma dependência não responde ao ping
func HealthcheckHandler(deps map[string]Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		checks := make(map[string]string, len(deps))
		for name, dep := range deps {
			if err := dep.Ping(ctx); err != nil {
				logrus.WithError(err).WithField("dependency", name).Warn("healthcheck: dependência indisponível")
				checks[name] = "down"
				status = http.StatusServiceUnavailable
				continue
			}
			checks[name] = "up"
		}

		writeJSON(w, r, status, map[string]any{
			"time":   now().Format(time.RFC3339),
			"checks": checks,
		})
	})
}
