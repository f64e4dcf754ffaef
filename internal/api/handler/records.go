package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/consultant-dashboard-api/pkg/apiErrors"
)

func pathID(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("id")
}

func ListClients(service recording.ClientRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		clients, err := service.ListClients(claims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "clients: listar")
			return
		}
		writeJSON(w, r, http.StatusOK, clients)
	}
}

func GetClient(service recording.ClientRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		client, err := service.GetClient(claims.UserID, pathID(r))
		if err != nil {
			writeServiceError(w, r, err, "clients: buscar")
			return
		}
		writeJSON(w, r, http.StatusOK, client)
	}
}

func CreateClient(service recording.ClientRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.ClientRequest
		if !decodeBody(w, r, &req) {
			return
		}

		client, err := service.CreateClient(claims.UserID, &req)
		if err != nil {
			writeServiceError(w, r, err, "clients: criar")
			return
		}
		writeJSON(w, r, http.StatusCreated, client)
	}
}

func UpdateClient(service recording.ClientRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.ClientRequest
		if !decodeBody(w, r, &req) {
			return
		}

		client, err := service.UpdateClient(claims.UserID, pathID(r), &req)
		if err != nil {
			writeServiceError(w, r, err, "clients: atualizar")
			return
		}
		writeJSON(w, r, http.StatusOK, client)
	}
}

func DeleteClient(service recording.ClientRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		if err := service.DeleteClient(claims.UserID, pathID(r)); err != nil {
			writeServiceError(w, r, err, "clients: remover")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ListProjects(service recording.ProjectRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		projects, err := service.ListProjects(claims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "projects: listar")
			return
		}
		writeJSON(w, r, http.StatusOK, projects)
	}
}

func CreateProject(service recording.ProjectRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.ProjectRequest
		if !decodeBody(w, r, &req) {
			return
		}

		project, err := service.CreateProject(claims.UserID, &req)
		if err != nil {
			writeServiceError(w, r, err, "projects: criar")
			return
		}
		writeJSON(w, r, http.StatusCreated, project)
	}
}

func UpdateProject(service recording.ProjectRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.ProjectRequest
		if !decodeBody(w, r, &req) {
			return
		}

		project, err := service.UpdateProject(claims.UserID, pathID(r), &req)
		if err != nil {
			writeServiceError(w, r, err, "projects: atualizar")
			return
		}
		writeJSON(w, r, http.StatusOK, project)
	}
}

func DeleteProject(service recording.ProjectRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		if err := service.DeleteProject(claims.UserID, pathID(r)); err != nil {
			writeServiceError(w, r, err, "projects: remover")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ListTimeEntries(service recording.TimeEntryRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		rng, err := parseOptionalDateRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		entries, err := service.ListTimeEntries(claims.UserID, rng)
		if err != nil {
			writeServiceError(w, r, err, "time-entries: listar")
			return
		}
		writeJSON(w, r, http.StatusOK, entries)
	}
}

func CreateTimeEntry(service recording.TimeEntryRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.TimeEntryRequest
		if !decodeBody(w, r, &req) {
			return
		}

		entry, err := service.CreateTimeEntry(claims.UserID, &req)
		if err != nil {
			writeServiceError(w, r, err, "time-entries: criar")
			return
		}
		writeJSON(w, r, http.StatusCreated, entry)
	}
}

func DeleteTimeEntry(service recording.TimeEntryRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		if err := service.DeleteTimeEntry(claims.UserID, pathID(r)); err != nil {
			writeServiceError(w, r, err, "time-entries: remover")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ListInvoiceItems aceita from/to, status (lista separada por vírgula) e client_id
func ListInvoiceItems(service recording.InvoiceItemRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		rng, err := parseOptionalDateRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		filters := domain.InvoiceItemFilters{Range: rng}
		for _, status := range splitList(r.URL.Query().Get("status")) {
			s := domain.InvoiceStatus(status)
			if !s.IsValid() {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Status de fatura inválido", map[string]string{"status": status})
				return
			}
			filters.Status = append(filters.Status, s)
		}
		if clientID := r.URL.Query().Get("client_id"); clientID != "" {
			filters.ClientID = &clientID
		}

		items, err := service.ListInvoiceItems(claims.UserID, filters)
		if err != nil {
			writeServiceError(w, r, err, "invoice-items: listar")
			return
		}
		writeJSON(w, r, http.StatusOK, items)
	}
}

func CreateInvoiceItem(service recording.InvoiceItemRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.InvoiceItemRequest
		if !decodeBody(w, r, &req) {
			return
		}

		item, err := service.CreateInvoiceItem(claims.UserID, &req)
		if err != nil {
			writeServiceError(w, r, err, "invoice-items: criar")
			return
		}
		writeJSON(w, r, http.StatusCreated, item)
	}
}

func UpdateInvoiceItem(service recording.InvoiceItemRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.InvoiceItemRequest
		if !decodeBody(w, r, &req) {
			return
		}

		item, err := service.UpdateInvoiceItem(claims.UserID, pathID(r), &req)
		if err != nil {
			writeServiceError(w, r, err, "invoice-items: atualizar")
			return
		}
		writeJSON(w, r, http.StatusOK, item)
	}
}

func DeleteInvoiceItem(service recording.InvoiceItemRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		if err := service.DeleteInvoiceItem(claims.UserID, pathID(r)); err != nil {
			writeServiceError(w, r, err, "invoice-items: remover")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ListExpenses(service recording.ExpenseRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		rng, err := parseOptionalDateRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		expenses, err := service.ListExpenses(claims.UserID, rng)
		if err != nil {
			writeServiceError(w, r, err, "expenses: listar")
			return
		}
		writeJSON(w, r, http.StatusOK, expenses)
	}
}

func CreateExpense(service recording.ExpenseRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.ExpenseRequest
		if !decodeBody(w, r, &req) {
			return
		}

		expense, err := service.CreateExpense(claims.UserID, &req)
		if err != nil {
			writeServiceError(w, r, err, "expenses: criar")
			return
		}
		writeJSON(w, r, http.StatusCreated, expense)
	}
}

func DeleteExpense(service recording.ExpenseRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		if err := service.DeleteExpense(claims.UserID, pathID(r)); err != nil {
			writeServiceError(w, r, err, "expenses: remover")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
