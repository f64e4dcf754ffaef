package profiling

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
	"github.com/vfg2006/consultant-dashboard-api/pkg/utils"
)

var (
	ErrNotFound     = errors.New("currículo não encontrado")
	ErrInvalidInput = errors.New("currículo inválido")
)

// ValidationError carrega os campos rejeitados pelo validator
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %d campo(s)", ErrInvalidInput.Error(), len(e.Fields))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

type Profiler interface {
	GetProfile(userID int) (*domain.CVProfile, error)
	SaveProfile(userID int, profile *domain.CVProfile) (*domain.CVProfile, error)
	DeleteProfile(userID int) error
}

type Service struct {
	repo     repository.CVProfileRepository
	validate *validator.Validate
}

func NewService(repo repository.CVProfileRepository) Profiler {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *Service) GetProfile(userID int) (*domain.CVProfile, error) {
	profile, err := s.repo.Get(userID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar currículo: %w", err)
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	return profile, nil
}

// SaveProfile substitui o documento inteiro. O dono é sempre o usuário autenticado.
func (s *Service) SaveProfile(userID int, profile *domain.CVProfile) (*domain.CVProfile, error) {
	if profile == nil {
		return nil, ErrInvalidInput
	}

	profile.UserID = userID
	normalizeProfile(profile)

	if err := s.validate.Struct(profile); err != nil {
		return nil, &ValidationError{Fields: utils.ValidationDetails(err)}
	}

	if err := s.repo.Save(profile); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao salvar currículo")
		return nil, fmt.Errorf("erro ao salvar currículo: %w", err)
	}

	return profile, nil
}

func (s *Service) DeleteProfile(userID int) error {
	found, err := s.repo.Delete(userID)
	if err != nil {
		return fmt.Errorf("erro ao remover currículo: %w", err)
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func normalizeProfile(profile *domain.CVProfile) {
	profile.PersonalInfo.Name = strings.TrimSpace(profile.PersonalInfo.Name)
	profile.PersonalInfo.Email = strings.TrimSpace(profile.PersonalInfo.Email)
	profile.Summary = strings.TrimSpace(profile.Summary)

	if phone := profile.PersonalInfo.Phone; phone != nil {
		if normalized, err := utils.NormalizePhone(*phone, utils.DefaultPhoneRegion); err == nil {
			profile.PersonalInfo.Phone = &normalized
		}
	}

	profile.Skills = uniqueSkills(profile.Skills)
	for i := range profile.Experience {
		profile.Experience[i].Skills = uniqueSkills(profile.Experience[i].Skills)
	}
	for i := range profile.Projects {
		profile.Projects[i].Skills = uniqueSkills(profile.Projects[i].Skills)
	}
}

// uniqueSkills remove vazios e repetidos (sem diferenciar maiúsculas) mantendo a primeira grafia
func uniqueSkills(skills []string) []string {
	if len(skills) == 0 {
		return skills
	}

	seen := make(map[string]bool, len(skills))
	result := make([]string, 0, len(skills))
	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		key := strings.ToLower(skill)
		if skill == "" || seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, skill)
	}
	return result
}
