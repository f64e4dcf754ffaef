package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
)

const cvProfilesTable = "cv_profiles"

type CVProfileRepository interface {
	Get(userID int) (*domain.CVProfile, error)
	Save(profile *domain.CVProfile) error
	Delete(userID int) (bool, error)
}

type cvProfileRepository struct {
	conn *postgres.Connection
}

func NewCVProfileRepository(conn *postgres.Connection) CVProfileRepository {
	return &cvProfileRepository{
		conn: conn,
	}
}

func (r *cvProfileRepository) Get(userID int) (*domain.CVProfile, error) {
	query, args, err := squirrel.
		Select("document", "updated_at").
		From(cvProfilesTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		profile  domain.CVProfile
		document []byte
	)
	err = r.conn.QueryRow(query, args...).Scan(&document, &profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar currículo: %w", err)
	}

	if err := json.Unmarshal(document, &profile); err != nil {
		return nil, fmt.Errorf("erro ao deserializar currículo: %w", err)
	}
	profile.UserID = userID

	return &profile, nil
}

func (r *cvProfileRepository) Save(profile *domain.CVProfile) error {
	document, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("erro ao serializar currículo: %w", err)
	}

	query, args, err := squirrel.
		Insert(cvProfilesTable).
		Columns("user_id", "document").
		Values(profile.UserID, string(document)).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET document = EXCLUDED.document, updated_at = NOW() RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&profile.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao salvar currículo: %w", err)
	}

	return nil
}

func (r *cvProfileRepository) Delete(userID int) (bool, error) {
	query, args, err := squirrel.
		Delete(cvProfilesTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover currículo: %w", err)
	}

	return affected(result)
}
