package recording

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
	"github.com/vfg2006/consultant-dashboard-api/pkg/utils"
)

func (s *Service) ListExpenses(userID int, rng *domain.DateRange) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListByUser(userID, rng)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar despesas")
		return nil, dbError(resourceExpense, "", err)
	}

	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

func (s *Service) CreateExpense(userID int, req *domain.ExpenseRequest) (*domain.Expense, error) {
	if err := s.validateRequest(resourceExpense, req); err != nil {
		return nil, err
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, invalid(resourceExpense, err.Error())
	}

	id, err := s.generateID(resourceExpense)
	if err != nil {
		return nil, err
	}

	expense := &domain.Expense{
		ID:          id,
		UserID:      userID,
		Date:        *date,
		Amount:      decimal.NewFromFloat(req.Amount).Round(2).InexactFloat64(),
		Category:    strings.TrimSpace(req.Category),
		Description: req.Description,
	}

	if err := s.expenseRepo.Create(expense); err != nil {
		logrus.WithError(err).Error("Erro ao criar despesa")
		return nil, dbError(resourceExpense, id, err)
	}

	return expense, nil
}

func (s *Service) DeleteExpense(userID int, expenseID string) error {
	found, err := s.expenseRepo.Delete(userID, expenseID)
	if err != nil {
		return dbError(resourceExpense, expenseID, err)
	}
	if !found {
		return notFound(resourceExpense, expenseID)
	}
	return nil
}
