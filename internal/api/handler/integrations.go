package handler

import (
	"fmt"
	"net/http"

	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/exporting"
	"github.com/vfg2006/consultant-dashboard-api/pkg/log"
)

func GetFortnoxStatus(service exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		status, err := service.FortnoxStatus(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "fortnox: status")
			return
		}
		writeJSON(w, r, http.StatusOK, status)
	}
}

func SaveFortnoxConfig(service exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.FortnoxConfigRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := service.SaveFortnoxConfig(r.Context(), claims.UserID, req); err != nil {
			writeServiceError(w, r, err, "fortnox: salvar configuração")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ClearFortnoxConfig(service exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		if err := service.ClearFortnoxConfig(r.Context(), claims.UserID); err != nil {
			writeServiceError(w, r, err, "fortnox: remover configuração")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// TestFortnoxConnection sempre responde 200. O resultado informa se a conexão funcionou.
func TestFortnoxConnection(service exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		result, err := service.TestFortnoxConnection(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "fortnox: testar conexão")
			return
		}
		writeJSON(w, r, http.StatusOK, result)
	}
}

func ListFortnoxCustomers(service exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		customers, err := service.FortnoxCustomers(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "fortnox: clientes")
			return
		}
		writeJSON(w, r, http.StatusOK, customers)
	}
}

// ExportToFortnox devolve o ExportResult. Falhas da exportação vêm no corpo com success=false.
func ExportToFortnox(service exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.FortnoxExportRequest
		if !decodeBody(w, r, &req) {
			return
		}

		result := service.ExportToFortnox(r.Context(), claims.UserID, req)

		status := http.StatusOK
		switch {
		case result.Success:
		case result.Error == exporting.ErrExportInProgress.Error():
			status = http.StatusConflict
		default:
			status = http.StatusUnprocessableEntity
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"user_id": claims.UserID,
			"success": result.Success,
		}).Info("fortnox: exportação processada")

		writeJSON(w, r, status, result)
	}
}

// ExportTextInvoice devolve a fatura em texto como anexo
func ExportTextInvoice(service exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.TextInvoiceRequest
		if !decodeBody(w, r, &req) {
			return
		}

		file, err := service.TextInvoice(r.Context(), claims.UserID, req)
		if err != nil {
			writeServiceError(w, r, err, "invoice-text: gerar")
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(file.Content)); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("invoice-text: erro ao enviar arquivo")
		}
	}
}
