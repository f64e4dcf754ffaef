package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const monthlyRevenueReportsTable = "monthly_revenue_reports"

type MonthlyRevenueReportRepository interface {
	SaveOrUpdate(report *domain.MonthlyRevenueReport) error
	GetByUserAndPeriod(userID int, period string) (*domain.MonthlyRevenueReport, error)
	ListByUser(userID int) ([]*domain.MonthlyRevenueReport, error)
}

type monthlyRevenueReportRepository struct {
	conn *postgres.Connection
}

func NewMonthlyRevenueReportRepository(conn *postgres.Connection) MonthlyRevenueReportRepository {
	return &monthlyRevenueReportRepository{
		conn: conn,
	}
}

func (r *monthlyRevenueReportRepository) SaveOrUpdate(report *domain.MonthlyRevenueReport) error {
	metricsJSON, err := json.Marshal(report.Metrics)
	if err != nil {
		return fmt.Errorf("erro ao serializar métricas: %w", err)
	}

	query, args, err := squirrel.
		Insert(monthlyRevenueReportsTable).
		Columns("user_id", "period", "metrics").
		Values(report.UserID, report.Period, string(metricsJSON)).
		Suffix("ON CONFLICT (user_id, period) DO UPDATE SET metrics = EXCLUDED.metrics, updated_at = NOW()").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar relatório mensal: %w", err)
	}

	return nil
}

func (r *monthlyRevenueReportRepository) GetByUserAndPeriod(userID int, period string) (*domain.MonthlyRevenueReport, error) {
	query, args, err := squirrel.
		Select("user_id", "period", "metrics", "created_at").
		From(monthlyRevenueReportsTable).
		Where(squirrel.Eq{"user_id": userID, "period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	report, err := scanMonthlyRevenueReport(r.conn.QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar relatório mensal: %w", err)
	}

	return report, nil
}

func (r *monthlyRevenueReportRepository) ListByUser(userID int) ([]*domain.MonthlyRevenueReport, error) {
	// period está em mm-yyyy, então a ordenação cronológica usa ano e mês separados
	query, args, err := squirrel.
		Select("user_id", "period", "metrics", "created_at").
		From(monthlyRevenueReportsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("SUBSTRING(period, 4, 4) DESC", "SUBSTRING(period, 1, 2) DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar relatórios mensais: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.MonthlyRevenueReport, 0)
	for rows.Next() {
		report, err := scanMonthlyRevenueReport(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return reports, nil
}

func scanMonthlyRevenueReport(row rowScanner) (*domain.MonthlyRevenueReport, error) {
	var (
		report      domain.MonthlyRevenueReport
		metricsJSON []byte
		createdAt   time.Time
	)

	if err := row.Scan(&report.UserID, &report.Period, &metricsJSON, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(metricsJSON, &report.Metrics); err != nil {
		return nil, fmt.Errorf("erro ao deserializar métricas: %w", err)
	}
	report.CreatedAt = createdAt.Format(time.RFC3339)

	return &report, nil
}
