package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/exporting"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/consultant-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/consultant-dashboard-api/pkg/log"
	"github.com/vfg2006/consultant-dashboard-api/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func GetRevenueReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		rng, err := parseDateRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		metrics, err := service.RevenueReport(r.Context(), claims.UserID, rng)
		if err != nil {
			writeServiceError(w, r, err, "reports: receita")
			return
		}
		writeJSON(w, r, http.StatusOK, metrics)
	}
}

// ExportRevenueReport devolve o relatório de receita como planilha xlsx
func ExportRevenueReport(service exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		rng, err := parseDateRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		buf, err := service.RevenueWorkbook(r.Context(), claims.UserID, rng)
		if err != nil {
			writeServiceError(w, r, err, "reports: exportar receita")
			return
		}

		filename := fmt.Sprintf("intakter_%s_%s.xlsx", rng.From.Format(utils.DateLayout), rng.To.Format(utils.DateLayout))
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("reports: erro ao enviar planilha")
		}
	}
}

func GetClientHealthReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		rng, err := parseDateRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		report, err := service.ClientHealthReport(r.Context(), claims.UserID, rng)
		if err != nil {
			writeServiceError(w, r, err, "reports: saúde dos clientes")
			return
		}
		writeJSON(w, r, http.StatusOK, report)
	}
}

// GetCashFlowReport aceita months (padrão 6) e balance (saldo atual, padrão 0)
func GetCashFlowReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()

		months := 0
		if value := query.Get("months"); value != "" {
			parsed, err := strconv.Atoi(value)
			if err != nil || parsed < 1 || parsed > 36 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "months deve ser um número entre 1 e 36", nil)
				return
			}
			months = parsed
		}

		balance := 0.0
		if value := query.Get("balance"); value != "" {
			parsed, err := strconv.ParseFloat(value, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "balance inválido", nil)
				return
			}
			balance = parsed
		}

		report, err := service.CashFlowReport(r.Context(), claims.UserID, months, balance)
		if err != nil {
			writeServiceError(w, r, err, "reports: fluxo de caixa")
			return
		}
		writeJSON(w, r, http.StatusOK, report)
	}
}

// GetMonthlyReports lista os snapshots mensais, ou apenas o de ?period=mm-yyyy
func GetMonthlyReports(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		period := r.URL.Query().Get("period")
		if period == "" {
			reports, err := service.MonthlyReports(claims.UserID)
			if err != nil {
				writeServiceError(w, r, err, "reports: mensais")
				return
			}
			writeJSON(w, r, http.StatusOK, reports)
			return
		}

		if _, err := utils.ParsePeriod(period); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report, err := service.MonthlyReport(claims.UserID, period)
		if err != nil {
			writeServiceError(w, r, err, "reports: mensal")
			return
		}
		writeJSON(w, r, http.StatusOK, report)
	}
}
