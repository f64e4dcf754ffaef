package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
)

const invoiceItemsTable = "invoice_items"

var invoiceItemColumns = []string{
	"id", "user_id", "client_id", "project_id", "description", "hours", "hourly_rate", "fixed_amount",
	"total_amount", "currency", "invoice_date", "due_date", "status", "notes", "created_at", "updated_at",
}

type InvoiceItemRepository interface {
	Create(item *domain.InvoiceItem) error
	Update(item *domain.InvoiceItem) (bool, error)
	Delete(userID int, itemID string) (bool, error)
	GetByID(userID int, itemID string) (*domain.InvoiceItem, error)
	List(userID int, filters domain.InvoiceItemFilters) ([]domain.InvoiceItem, error)
}

type invoiceItemRepository struct {
	conn *postgres.Connection
}

func NewInvoiceItemRepository(conn *postgres.Connection) InvoiceItemRepository {
	return &invoiceItemRepository{
		conn: conn,
	}
}

func (r *invoiceItemRepository) Create(item *domain.InvoiceItem) error {
	query, args, err := squirrel.
		Insert(invoiceItemsTable).
		Columns("id", "user_id", "client_id", "project_id", "description", "hours", "hourly_rate", "fixed_amount",
			"total_amount", "currency", "invoice_date", "due_date", "status", "notes").
		Values(item.ID, item.UserID, item.ClientID, item.ProjectID, item.Description, item.Hours, item.HourlyRate, item.FixedAmount,
			item.TotalAmount, item.Currency, item.InvoiceDate, item.DueDate, item.Status, item.Notes).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&item.CreatedAt, &item.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao criar item de fatura: %w", err)
	}

	return nil
}

func (r *invoiceItemRepository) Update(item *domain.InvoiceItem) (bool, error) {
	query, args, err := squirrel.
		Update(invoiceItemsTable).
		SetMap(map[string]any{
			"client_id":    item.ClientID,
			"project_id":   item.ProjectID,
			"description":  item.Description,
			"hours":        item.Hours,
			"hourly_rate":  item.HourlyRate,
			"fixed_amount": item.FixedAmount,
			"total_amount": item.TotalAmount,
			"currency":     item.Currency,
			"invoice_date": item.InvoiceDate,
			"due_date":     item.DueDate,
			"status":       item.Status,
			"notes":        item.Notes,
			"updated_at":   squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": item.ID, "user_id": item.UserID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao atualizar item de fatura: %w", err)
	}

	return affected(result)
}

func (r *invoiceItemRepository) Delete(userID int, itemID string) (bool, error) {
	query, args, err := squirrel.
		Delete(invoiceItemsTable).
		Where(squirrel.Eq{"id": itemID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover item de fatura: %w", err)
	}

	return affected(result)
}

func (r *invoiceItemRepository) GetByID(userID int, itemID string) (*domain.InvoiceItem, error) {
	query, args, err := squirrel.
		Select(invoiceItemColumns...).
		From(invoiceItemsTable).
		Where(squirrel.Eq{"id": itemID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	item, err := scanInvoiceItem(r.conn.QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar item de fatura: %w", err)
	}

	return item, nil
}

func (r *invoiceItemRepository) List(userID int, filters domain.InvoiceItemFilters) ([]domain.InvoiceItem, error) {
	builder := squirrel.
		Select(invoiceItemColumns...).
		From(invoiceItemsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("invoice_date DESC", "created_at ASC")

	builder = withRange(builder, "invoice_date", filters.Range)

	if len(filters.Status) > 0 {
		statuses := make([]string, len(filters.Status))
		for i, s := range filters.Status {
			statuses[i] = string(s)
		}
		builder = builder.Where(squirrel.Eq{"status": statuses})
	}

	if len(filters.ItemIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"id": filters.ItemIDs})
	}

	if filters.ClientID != nil {
		builder = builder.Where(squirrel.Eq{"client_id": *filters.ClientID})
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar itens de fatura: %w", err)
	}
	defer rows.Close()

	items := make([]domain.InvoiceItem, 0)
	for rows.Next() {
		item, err := scanInvoiceItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return items, nil
}

func scanInvoiceItem(row rowScanner) (*domain.InvoiceItem, error) {
	var i domain.InvoiceItem
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.ClientID,
		&i.ProjectID,
		&i.Description,
		&i.Hours,
		&i.HourlyRate,
		&i.FixedAmount,
		&i.TotalAmount,
		&i.Currency,
		&i.InvoiceDate,
		&i.DueDate,
		&i.Status,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}
