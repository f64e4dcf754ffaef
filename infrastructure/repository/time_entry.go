package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
)

const timeEntriesTable = "time_entries"

type TimeEntryRepository interface {
	Create(entry *domain.TimeEntry) error
	Delete(userID int, entryID string) (bool, error)
	ListByUser(userID int, rng *domain.DateRange) ([]domain.TimeEntry, error)
}

type timeEntryRepository struct {
	conn *postgres.Connection
}

func NewTimeEntryRepository(conn *postgres.Connection) TimeEntryRepository {
	return &timeEntryRepository{
		conn: conn,
	}
}

func (r *timeEntryRepository) Create(entry *domain.TimeEntry) error {
	query, args, err := squirrel.
		Insert(timeEntriesTable).
		Columns("id", "user_id", "project_id", "date", "hours", "description").
		Values(entry.ID, entry.UserID, entry.ProjectID, entry.Date, entry.Hours, entry.Description).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&entry.CreatedAt); err != nil {
		return fmt.Errorf("erro ao registrar horas: %w", err)
	}

	return nil
}

func (r *timeEntryRepository) Delete(userID int, entryID string) (bool, error) {
	query, args, err := squirrel.
		Delete(timeEntriesTable).
		Where(squirrel.Eq{"id": entryID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover registro de horas: %w", err)
	}

	return affected(result)
}

func (r *timeEntryRepository) ListByUser(userID int, rng *domain.DateRange) ([]domain.TimeEntry, error) {
	builder := squirrel.
		Select("id", "user_id", "project_id", "date", "hours", "description", "created_at").
		From(timeEntriesTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date DESC")

	query, args, err := withRange(builder, "date", rng).PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar registros de horas: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.TimeEntry, 0)
	for rows.Next() {
		var e domain.TimeEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.ProjectID, &e.Date, &e.Hours, &e.Description, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return entries, nil
}
