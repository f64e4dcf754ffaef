package reporting

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
)

type clientActivity struct {
	perf        domain.ClientPerformance
	hasActivity bool
}

func touch(last **time.Time, at time.Time) {
	if *last == nil || at.After(**last) {
		t := at
		*last = &t
	}
}

// ComputeClientHealth calcula a recência, o status e o score de saúde de cada cliente no período
func ComputeClientHealth(
	rng domain.DateRange,
	clients []domain.Client,
	projects []domain.Project,
	items []domain.InvoiceItem,
	entries []domain.TimeEntry,
	now time.Time,
	policy HealthPolicy,
) domain.ClientHealthReport {
	resolver := newClientResolver(clients, projects)

	order := make([]string, 0, len(clients))
	byClient := make(map[string]*clientActivity, len(clients))
	for _, c := range clients {
		if _, dup := byClient[c.ID]; dup {
			continue
		}
		order = append(order, c.ID)
		byClient[c.ID] = &clientActivity{perf: domain.ClientPerformance{ClientID: c.ID, ClientName: c.Name}}
	}

	for _, p := range projects {
		if acc, ok := byClient[p.ClientID]; ok {
			acc.perf.ProjectCount++
		}
	}

	var rangeRevenue float64
	referencedProjects := make(map[string]struct{})

	for _, item := range items {
		inRange := rng.Contains(item.InvoiceDate)
		if inRange {
			rangeRevenue += item.TotalAmount
			if item.ProjectID != nil {
				referencedProjects[*item.ProjectID] = struct{}{}
			}
		}

		client, ok := resolver.forItem(item)
		if !ok {
			continue
		}

		acc := byClient[client.ID]
		touch(&acc.perf.LastActivity, item.InvoiceDate)
		if inRange {
			acc.perf.Revenue += item.TotalAmount
			acc.perf.InvoiceCount++
			acc.hasActivity = true
		}
	}

	for _, entry := range entries {
		inRange := rng.Contains(entry.Date)
		if inRange {
			referencedProjects[entry.ProjectID] = struct{}{}
		}

		client, ok := resolver.forEntry(entry)
		if !ok {
			continue
		}

		acc := byClient[client.ID]
		touch(&acc.perf.LastActivity, entry.Date)
		if inRange {
			acc.perf.Hours += entry.Hours
			acc.hasActivity = true
		}
	}

	report := domain.ClientHealthReport{
		TotalClients:        len(order),
		AverageProjectValue: safeDiv(rangeRevenue, float64(len(referencedProjects))),
	}

	rows := make([]domain.ClientPerformance, 0, len(order))
	for _, id := range order {
		acc := byClient[id]
		if acc.hasActivity {
			report.ActiveClients++
		}

		perf := acc.perf
		perf.AverageProjectValue = safeDiv(perf.Revenue, float64(perf.ProjectCount))

		if perf.LastActivity != nil {
			days := int(math.Floor(now.Sub(*perf.LastActivity).Hours() / 24))
			if days < 0 {
				days = 0
			}
			perf.DaysSinceActivity = &days
		}

		switch {
		case perf.Revenue == 0 && perf.Hours == 0:
			perf.Status, perf.HealthScore = domain.ClientStatusInactive, 0
		case perf.DaysSinceActivity != nil:
			perf.Status, perf.HealthScore = policy.Classify(*perf.DaysSinceActivity)
		default:
			perf.Status, perf.HealthScore = domain.ClientStatusInactive, 0
		}

		rows = append(rows, perf)
	}

	report.RetentionRate = percentage(float64(report.ActiveClients), float64(report.TotalClients))

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Revenue != rows[j].Revenue {
			return rows[i].Revenue > rows[j].Revenue
		}
		return rows[i].HealthScore > rows[j].HealthScore
	})

	if policy.MaxRows > 0 && len(rows) > policy.MaxRows {
		report.RemainingClients = len(rows) - policy.MaxRows
		rows = rows[:policy.MaxRows]
	}
	report.Clients = rows

	return report
}

// ClientHealthAggregator guarda o último relatório e ignora recálculos enquanto o dataset carrega
type ClientHealthAggregator struct {
	mu       sync.Mutex
	policy   HealthPolicy
	snapshot domain.ClientHealthReport
}

func NewClientHealthAggregator(policy HealthPolicy) *ClientHealthAggregator {
	return &ClientHealthAggregator{policy: policy}
}

func (a *ClientHealthAggregator) Recompute(ds Dataset) domain.ClientHealthReport {
	a.mu.Lock()
	defer a.mu.Unlock()

	if ds.Loading {
		return a.snapshot
	}

	a.snapshot = ComputeClientHealth(ds.Range, ds.Clients, ds.Projects, ds.Items, ds.Entries, ds.Now, a.policy)
	return a.snapshot
}
