package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
)

const clientsTable = "clients"

var clientColumns = []string{"id", "user_id", "name", "company", "contact_person", "email", "phone", "organisation_number", "created_at", "updated_at"}

type ClientRepository interface {
	Create(client *domain.Client) error
	Update(client *domain.Client) (bool, error)
	Delete(userID int, clientID string) (bool, error)
	GetByID(userID int, clientID string) (*domain.Client, error)
	ListByUser(userID int) ([]domain.Client, error)
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) Create(client *domain.Client) error {
	query, args, err := squirrel.
		Insert(clientsTable).
		Columns("id", "user_id", "name", "company", "contact_person", "email", "phone", "organisation_number").
		Values(client.ID, client.UserID, client.Name, client.Company, client.ContactPerson, client.Email, client.Phone, client.OrganisationNumber).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&client.CreatedAt, &client.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}

	return nil
}

func (r *clientRepository) Update(client *domain.Client) (bool, error) {
	query, args, err := squirrel.
		Update(clientsTable).
		Set("name", client.Name).
		Set("company", client.Company).
		Set("contact_person", client.ContactPerson).
		Set("email", client.Email).
		Set("phone", client.Phone).
		Set("organisation_number", client.OrganisationNumber).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": client.ID, "user_id": client.UserID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao atualizar cliente: %w", err)
	}

	return affected(result)
}

func (r *clientRepository) Delete(userID int, clientID string) (bool, error) {
	query, args, err := squirrel.
		Delete(clientsTable).
		Where(squirrel.Eq{"id": clientID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover cliente: %w", err)
	}

	return affected(result)
}

func (r *clientRepository) GetByID(userID int, clientID string) (*domain.Client, error) {
	query, args, err := squirrel.
		Select(clientColumns...).
		From(clientsTable).
		Where(squirrel.Eq{"id": clientID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	client, err := scanClient(r.conn.QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}

	return client, nil
}

func (r *clientRepository) ListByUser(userID int) ([]domain.Client, error) {
	query, args, err := squirrel.
		Select(clientColumns...).
		From(clientsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	clients := make([]domain.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		clients = append(clients, *client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return clients, nil
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var c domain.Client
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Company,
		&c.ContactPerson,
		&c.Email,
		&c.Phone,
		&c.OrganisationNumber,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
