package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
)

// rowScanner é satisfeito por *sql.Row e *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func affected(result sql.Result) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao ler linhas afetadas: %w", err)
	}
	return n > 0, nil
}

func withRange(query squirrel.SelectBuilder, column string, rng *domain.DateRange) squirrel.SelectBuilder {
	if rng == nil {
		return query
	}

	return query.Where(squirrel.GtOrEq{column: rng.From}).Where(squirrel.LtOrEq{column: rng.To})
}
