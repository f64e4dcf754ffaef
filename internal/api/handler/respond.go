package handler

import (
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/exporting"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/profiling"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/consultant-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/consultant-dashboard-api/pkg/log"
	"github.com/vfg2006/consultant-dashboard-api/pkg/middleware"
	"github.com/vfg2006/consultant-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// now é substituído nos testes
var now = time.Now

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("erro ao codificar resposta")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}
	return true
}

// currentUser devolve as claims do token ou responde 401
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return claims, true
}

// parseDateRange lê from/to da query. Sem os dois parâmetros usa o mês corrente.
func parseDateRange(r *http.Request) (domain.DateRange, error) {
	rng, err := parseOptionalDateRange(r)
	if err != nil {
		return domain.DateRange{}, err
	}
	if rng == nil {
		return domain.MonthRange(now()), nil
	}
	return *rng, nil
}

// parseOptionalDateRange retorna nil quando nenhum limite foi informado
func parseOptionalDateRange(r *http.Request) (*domain.DateRange, error) {
	query := r.URL.Query()
	fromStr, toStr := query.Get("from"), query.Get("to")
	if fromStr == "" && toStr == "" {
		return nil, nil
	}

	from, err := utils.ParseDate(fromStr)
	if err != nil {
		return nil, err
	}
	to, err := utils.ParseDate(toStr)
	if err != nil {
		return nil, err
	}
	if from == nil || to == nil {
		return nil, domain.ErrMissingDateRange
	}

	rng := domain.NewDateRange(*from, *to)
	if err := rng.Validate(); err != nil {
		return nil, err
	}
	return &rng, nil
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}

	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

// writeServiceError converte os erros dos casos de uso em respostas padronizadas
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	err = errors.Wrap(err, operation)
	logger := log.ForContext(r.Context()).WithError(err)

	var (
		recordErr     *recording.RecordError
		authErr       *authenticating.AuthError
		validationErr *profiling.ValidationError
	)

	switch {
	case errors.As(err, &recordErr):
		logger.Warn("erro no cadastro")
		apiErrors.WriteError(w, recordErr.Code, recordErr.Err.Error(), recordErr.Details)

	case errors.As(err, &authErr):
		logger.Warn("erro de autenticação")
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)

	case errors.As(err, &validationErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, profiling.ErrInvalidInput.Error(), validationErr.Fields)

	case errors.Is(err, profiling.ErrNotFound),
		errors.Is(err, reporting.ErrReportNotFound),
		errors.Is(err, exporting.ErrNoItems):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, errors.Cause(err).Error(), nil)

	case errors.Is(err, exporting.ErrInvalidInput),
		errors.Is(err, profiling.ErrInvalidInput),
		errors.Is(err, domain.ErrMissingDateRange),
		errors.Is(err, domain.ErrInvertedRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, errors.Cause(err).Error(), nil)

	case errors.Is(err, exporting.ErrExportInProgress):
		apiErrors.WriteError(w, apiErrors.ErrResourceConflict, exporting.ErrExportInProgress.Error(), nil)

	default:
		logger.Error("erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}
