package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/consultant-dashboard-api/internal/config"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
	"github.com/vfg2006/consultant-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestAuthService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{Auth: config.Auth{SecretKey: "segredo-de-teste"}}
	s := NewService(repo, cfg).(*Service)
	s.now = func() time.Time { return fixedNow }

	return s, repo
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func authCode(t *testing.T, err error) string {
	t.Helper()
	var authErr *AuthError
	require.True(t, errors.As(err, &authErr), "esperava AuthError, recebeu %v", err)
	return authErr.Code
}

func TestNewService_DefaultTTL(t *testing.T) {
	s := NewService(nil, &config.Config{}).(*Service)
	assert.Equal(t, 24*time.Hour, s.tokenTTL)
}

func TestService_Register(t *testing.T) {
	t.Run("cria usuário ativo com senha criptografada", func(t *testing.T) {
		s, repo := newTestAuthService(t)

		repo.EXPECT().GetUserByEmail("ana@konsult.se").Return(nil, nil)
		repo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				assert.Equal(t, "Ana", user.Name)
				assert.True(t, user.Active)
				assert.Equal(t, domain.RoleUser, user.RoleID)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Hemligt123")))
				user.ID = 10
				return user, nil
			})

		user, err := s.Register(&domain.RegisterRequest{Name: " Ana ", Email: " Ana@Konsult.se", Password: "Hemligt123"})

		require.NoError(t, err)
		assert.Equal(t, 10, user.ID)
		assert.Empty(t, user.PasswordHash)
	})

	tests := []struct {
		name     string
		req      *domain.RegisterRequest
		setup    func(repo *mocks.MockUserRepository)
		wantErr  error
		wantCode string
	}{
		{
			name:     "pedido nulo",
			req:      nil,
			wantErr:  ErrInvalidRequest,
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "email inválido",
			req:      &domain.RegisterRequest{Name: "Ana", Email: "ana", Password: "Hemligt123"},
			wantErr:  ErrInvalidRequest,
			wantCode: apiErrors.ErrInvalidRequest,
		},
		{
			name:     "senha sem maiúscula",
			req:      &domain.RegisterRequest{Name: "Ana", Email: "ana@konsult.se", Password: "hemligt123"},
			wantErr:  ErrWeakPassword,
			wantCode: apiErrors.ErrInvalidRequest,
		},
		{
			name: "email já cadastrado",
			req:  &domain.RegisterRequest{Name: "Ana", Email: "ana@konsult.se", Password: "Hemligt123"},
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ana@konsult.se").Return(&domain.User{ID: 1}, nil)
			},
			wantErr:  ErrUserAlreadyExists,
			wantCode: apiErrors.ErrUserAlreadyExists,
		},
		{
			name: "falha ao gravar",
			req:  &domain.RegisterRequest{Name: "Ana", Email: "ana@konsult.se", Password: "Hemligt123"},
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ana@konsult.se").Return(nil, nil)
				repo.EXPECT().CreateUser(gomock.Any()).Return(nil, errors.New("duplicate key"))
			},
			wantErr:  ErrDatabaseOperation,
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo := newTestAuthService(t)
			if tt.setup != nil {
				tt.setup(repo)
			}

			user, err := s.Register(tt.req)

			assert.Nil(t, user)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCode, authCode(t, err))
		})
	}
}

func TestService_LoginAndValidate(t *testing.T) {
	t.Run("gera token válido por 24h", func(t *testing.T) {
		s, repo := newTestAuthService(t)

		repo.EXPECT().GetUserByEmail("ana@konsult.se").Return(&domain.User{
			ID:           10,
			Name:         "Ana",
			Email:        "ana@konsult.se",
			PasswordHash: hashPassword(t, "Hemligt123"),
			Active:       true,
			RoleID:       domain.RoleAdmin,
		}, nil)

		token, err := s.LoginUser(&domain.LoginRequest{Email: "ANA@konsult.se", Password: "Hemligt123"})
		require.NoError(t, err)

		claims, err := s.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 10, claims.UserID)
		assert.Equal(t, domain.RoleAdmin, claims.UserRoleID)
		assert.Equal(t, fixedNow.Add(24*time.Hour), claims.ExpiresAt.Time.UTC())

		s.now = func() time.Time { return fixedNow.Add(25 * time.Hour) }
		_, err = s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("senha incorreta", func(t *testing.T) {
		s, repo := newTestAuthService(t)

		repo.EXPECT().GetUserByEmail("ana@konsult.se").Return(&domain.User{
			ID:           10,
			PasswordHash: hashPassword(t, "Hemligt123"),
			Active:       true,
		}, nil)

		_, err := s.LoginUser(&domain.LoginRequest{Email: "ana@konsult.se", Password: "fel"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.True(t, IsCredentialsError(err))
		assert.Equal(t, apiErrors.ErrInvalidCredentials, authCode(t, err))
	})

	t.Run("usuário desativado", func(t *testing.T) {
		s, repo := newTestAuthService(t)

		repo.EXPECT().GetUserByEmail("ana@konsult.se").Return(&domain.User{ID: 10, Active: false}, nil)

		_, err := s.LoginUser(&domain.LoginRequest{Email: "ana@konsult.se", Password: "Hemligt123"})

		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		s, repo := newTestAuthService(t)

		repo.EXPECT().GetUserByEmail("ana@konsult.se").Return(nil, nil)

		_, err := s.LoginUser(&domain.LoginRequest{Email: "ana@konsult.se", Password: "Hemligt123"})

		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.True(t, IsCredentialsError(err))
	})

	t.Run("campos ausentes", func(t *testing.T) {
		s, _ := newTestAuthService(t)

		_, err := s.LoginUser(&domain.LoginRequest{Email: "ana@konsult.se"})

		assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestService_ValidateToken_Rejects(t *testing.T) {
	s, _ := newTestAuthService(t)

	t.Run("assinatura diferente", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{
			UserID: 1,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(fixedNow.Add(time.Hour)),
			},
		})
		signed, err := token.SignedString([]byte("outro-segredo"))
		require.NoError(t, err)

		_, err = s.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token malformado", func(t *testing.T) {
		_, err := s.ValidateToken("abc.def")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_GetUserProfile(t *testing.T) {
	t.Run("omite o hash da senha", func(t *testing.T) {
		s, repo := newTestAuthService(t)
		repo.EXPECT().GetUserByID(10).Return(&domain.User{ID: 10, PasswordHash: "hash"}, nil)

		user, err := s.GetUserProfile(10)

		require.NoError(t, err)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("não encontrado", func(t *testing.T) {
		s, repo := newTestAuthService(t)
		repo.EXPECT().GetUserByID(10).Return(nil, nil)

		_, err := s.GetUserProfile(10)

		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Equal(t, apiErrors.ErrUserNotFound, authCode(t, err))
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := map[string]bool{
		"Kort1":      false,
		"hemligt123": false,
		"HEMLIGT123": false,
		"Hemligtord": false,
		"Hemligt123": true,
	}

	for password, valid := range tests {
		t.Run(password, func(t *testing.T) {
			err := ValidatePasswordStrength(password)
			if valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
