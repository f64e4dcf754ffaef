package reporting

import (
	"time"

	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
)

// Dataset é o retrato dos registros de um usuário usado para recalcular os relatórios
type Dataset struct {
	Range    domain.DateRange
	Now      time.Time
	Items    []domain.InvoiceItem
	Clients  []domain.Client
	Projects []domain.Project
	Entries  []domain.TimeEntry
	Expenses []domain.Expense
	Loading  bool
}

// clientResolver resolve o cliente de uma linha pela referência de projeto e, em seguida, pela referência direta
type clientResolver struct {
	projects map[string]domain.Project
	clients  map[string]domain.Client
}

func newClientResolver(clients []domain.Client, projects []domain.Project) clientResolver {
	r := clientResolver{
		projects: make(map[string]domain.Project, len(projects)),
		clients:  make(map[string]domain.Client, len(clients)),
	}
	for _, p := range projects {
		r.projects[p.ID] = p
	}
	for _, c := range clients {
		r.clients[c.ID] = c
	}
	return r
}

// forItem retorna ok=false quando a linha não chega a nenhum cliente conhecido
func (r clientResolver) forItem(item domain.InvoiceItem) (domain.Client, bool) {
	if item.ProjectID != nil {
		if project, ok := r.projects[*item.ProjectID]; ok {
			if client, ok := r.clients[project.ClientID]; ok {
				return client, true
			}
		}
	}

	if item.ClientID != nil {
		if client, ok := r.clients[*item.ClientID]; ok {
			return client, true
		}
	}

	return domain.Client{}, false
}

func (r clientResolver) forEntry(entry domain.TimeEntry) (domain.Client, bool) {
	project, ok := r.projects[entry.ProjectID]
	if !ok {
		return domain.Client{}, false
	}

	client, ok := r.clients[project.ClientID]
	return client, ok
}

func percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
