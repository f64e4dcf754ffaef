package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
)

const expensesTable = "expenses"

type ExpenseRepository interface {
	Create(expense *domain.Expense) error
	Delete(userID int, expenseID string) (bool, error)
	ListByUser(userID int, rng *domain.DateRange) ([]domain.Expense, error)
}

type expenseRepository struct {
	conn *postgres.Connection
}

func NewExpenseRepository(conn *postgres.Connection) ExpenseRepository {
	return &expenseRepository{
		conn: conn,
	}
}

func (r *expenseRepository) Create(expense *domain.Expense) error {
	query, args, err := squirrel.
		Insert(expensesTable).
		Columns("id", "user_id", "date", "amount", "category", "description").
		Values(expense.ID, expense.UserID, expense.Date, expense.Amount, expense.Category, expense.Description).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&expense.CreatedAt); err != nil {
		return fmt.Errorf("erro ao registrar despesa: %w", err)
	}

	return nil
}

func (r *expenseRepository) Delete(userID int, expenseID string) (bool, error) {
	query, args, err := squirrel.
		Delete(expensesTable).
		Where(squirrel.Eq{"id": expenseID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover despesa: %w", err)
	}

	return affected(result)
}

func (r *expenseRepository) ListByUser(userID int, rng *domain.DateRange) ([]domain.Expense, error) {
	builder := squirrel.
		Select("id", "user_id", "date", "amount", "category", "description", "created_at").
		From(expensesTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date DESC")

	query, args, err := withRange(builder, "date", rng).PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar despesas: %w", err)
	}
	defer rows.Close()

	expenses := make([]domain.Expense, 0)
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Amount, &e.Category, &e.Description, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return expenses, nil
}
