package profiling

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestProfileService(t *testing.T) (Profiler, *mocks.MockCVProfileRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCVProfileRepository(ctrl)
	return NewService(repo), repo
}

func strPtr(s string) *string { return &s }

func TestService_GetProfile(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(repo *mocks.MockCVProfileRepository)
		wantErr   error
		wantName  string
		anyErrMsg string
	}{
		{
			name: "retorna o currículo salvo",
			setup: func(repo *mocks.MockCVProfileRepository) {
				repo.EXPECT().Get(7).Return(&domain.CVProfile{
					UserID:       7,
					PersonalInfo: domain.CVPersonalInfo{Name: "Niklas"},
				}, nil)
			},
			wantName: "Niklas",
		},
		{
			name: "currículo inexistente",
			setup: func(repo *mocks.MockCVProfileRepository) {
				repo.EXPECT().Get(7).Return(nil, nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "falha no banco",
			setup: func(repo *mocks.MockCVProfileRepository) {
				repo.EXPECT().Get(7).Return(nil, errors.New("conexão perdida"))
			},
			anyErrMsg: "conexão perdida",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo := newTestProfileService(t)
			tt.setup(repo)

			profile, err := s.GetProfile(7)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, profile)
			case tt.anyErrMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.anyErrMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantName, profile.PersonalInfo.Name)
			}
		})
	}
}

func TestService_SaveProfile(t *testing.T) {
	t.Run("força o dono e normaliza as competências", func(t *testing.T) {
		s, repo := newTestProfileService(t)

		repo.EXPECT().
			Save(gomock.Any()).
			DoAndReturn(func(profile *domain.CVProfile) error {
				assert.Equal(t, 3, profile.UserID)
				assert.Equal(t, []string{"Go", "React", "SQL"}, profile.Skills)
				assert.Equal(t, []string{"Docker"}, profile.Experience[0].Skills)
				require.NotNil(t, profile.PersonalInfo.Phone)
				assert.Equal(t, "+46701234567", *profile.PersonalInfo.Phone)
				return nil
			})

		saved, err := s.SaveProfile(3, &domain.CVProfile{
			UserID: 99,
			PersonalInfo: domain.CVPersonalInfo{
				Name:  " Niklas Andervang ",
				Email: "niklas@example.se",
				Phone: strPtr("070-123 45 67"),
			},
			Skills: []string{"Go", " go ", "React", "", "SQL"},
			Experience: []domain.CVExperience{
				{Company: "Valtech", Role: "Tech Lead", StartDate: "2021", Skills: []string{"Docker", "docker"}},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "Niklas Andervang", saved.PersonalInfo.Name)
	})

	t.Run("mantém telefone que não pode ser normalizado", func(t *testing.T) {
		s, repo := newTestProfileService(t)

		repo.EXPECT().Save(gomock.Any()).Return(nil)

		saved, err := s.SaveProfile(3, &domain.CVProfile{
			PersonalInfo: domain.CVPersonalInfo{Name: "Niklas", Phone: strPtr("ring mig")},
		})

		require.NoError(t, err)
		assert.Equal(t, "ring mig", *saved.PersonalInfo.Phone)
	})

	t.Run("rejeita currículo sem nome", func(t *testing.T) {
		s, _ := newTestProfileService(t)

		_, err := s.SaveProfile(3, &domain.CVProfile{
			PersonalInfo: domain.CVPersonalInfo{Name: "  "},
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "required", validationErr.Fields["Name"])
	})

	t.Run("rejeita experiência incompleta", func(t *testing.T) {
		s, _ := newTestProfileService(t)

		_, err := s.SaveProfile(3, &domain.CVProfile{
			PersonalInfo: domain.CVPersonalInfo{Name: "Niklas"},
			Experience:   []domain.CVExperience{{Company: "Valtech"}},
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("documento nulo", func(t *testing.T) {
		s, _ := newTestProfileService(t)

		_, err := s.SaveProfile(3, nil)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("falha ao salvar", func(t *testing.T) {
		s, repo := newTestProfileService(t)

		repo.EXPECT().Save(gomock.Any()).Return(errors.New("timeout"))

		_, err := s.SaveProfile(3, &domain.CVProfile{PersonalInfo: domain.CVPersonalInfo{Name: "Niklas"}})

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_DeleteProfile(t *testing.T) {
	t.Run("remove", func(t *testing.T) {
		s, repo := newTestProfileService(t)
		repo.EXPECT().Delete(5).Return(true, nil)

		assert.NoError(t, s.DeleteProfile(5))
	})

	t.Run("nada para remover", func(t *testing.T) {
		s, repo := newTestProfileService(t)
		repo.EXPECT().Delete(5).Return(false, nil)

		assert.ErrorIs(t, s.DeleteProfile(5), ErrNotFound)
	})

	t.Run("erro do banco", func(t *testing.T) {
		s, repo := newTestProfileService(t)
		repo.EXPECT().Delete(5).Return(false, errors.New("boom"))

		err := s.DeleteProfile(5)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestUniqueSkills(t *testing.T) {
	assert.Nil(t, uniqueSkills(nil))
	assert.Equal(t, []string{"Go", "Rust"}, uniqueSkills([]string{" Go", "GO", "Rust", "rust ", " "}))
}
