package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
)

const projectsTable = "projects"

var projectColumns = []string{"id", "user_id", "client_id", "name", "hourly_rate", "budget", "status", "created_at", "updated_at"}

type ProjectRepository interface {
	Create(project *domain.Project) error
	Update(project *domain.Project) (bool, error)
	Delete(userID int, projectID string) (bool, error)
	GetByID(userID int, projectID string) (*domain.Project, error)
	ListByUser(userID int) ([]domain.Project, error)
}

type projectRepository struct {
	conn *postgres.Connection
}

func NewProjectRepository(conn *postgres.Connection) ProjectRepository {
	return &projectRepository{
		conn: conn,
	}
}

func (r *projectRepository) Create(project *domain.Project) error {
	query, args, err := squirrel.
		Insert(projectsTable).
		Columns("id", "user_id", "client_id", "name", "hourly_rate", "budget", "status").
		Values(project.ID, project.UserID, project.ClientID, project.Name, project.HourlyRate, project.Budget, project.Status).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&project.CreatedAt, &project.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao criar projeto: %w", err)
	}

	return nil
}

func (r *projectRepository) Update(project *domain.Project) (bool, error) {
	query, args, err := squirrel.
		Update(projectsTable).
		Set("client_id", project.ClientID).
		Set("name", project.Name).
		Set("hourly_rate", project.HourlyRate).
		Set("budget", project.Budget).
		Set("status", project.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": project.ID, "user_id": project.UserID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao atualizar projeto: %w", err)
	}

	return affected(result)
}

func (r *projectRepository) Delete(userID int, projectID string) (bool, error) {
	query, args, err := squirrel.
		Delete(projectsTable).
		Where(squirrel.Eq{"id": projectID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover projeto: %w", err)
	}

	return affected(result)
}

func (r *projectRepository) GetByID(userID int, projectID string) (*domain.Project, error) {
	query, args, err := squirrel.
		Select(projectColumns...).
		From(projectsTable).
		Where(squirrel.Eq{"id": projectID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	project, err := scanProject(r.conn.QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar projeto: %w", err)
	}

	return project, nil
}

func (r *projectRepository) ListByUser(userID int) ([]domain.Project, error) {
	query, args, err := squirrel.
		Select(projectColumns...).
		From(projectsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar projetos: %w", err)
	}
	defer rows.Close()

	projects := make([]domain.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return projects, nil
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.ClientID,
		&p.Name,
		&p.HourlyRate,
		&p.Budget,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
