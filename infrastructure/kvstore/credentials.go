package kvstore

import (
	"context"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	fortnoxdomain "github.com/vfg2006/consultant-dashboard-api/infrastructure/integrator/fortnox/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const fortnoxKeyPrefix = "fortnox_config:"

// CredentialStore guarda as credenciais do Fortnox por usuário
type CredentialStore interface {
	SaveFortnox(ctx context.Context, userID int, creds fortnoxdomain.Credentials) error
	// LoadFortnox retorna nil, nil quando o usuário não tem credenciais salvas
	LoadFortnox(ctx context.Context, userID int) (*fortnoxdomain.Credentials, error)
	ClearFortnox(ctx context.Context, userID int) error
}

type RedisCredentialStore struct {
	client redis.Cmdable
}

func NewCredentialStore(client redis.Cmdable) CredentialStore {
	return &RedisCredentialStore{client: client}
}

func FortnoxKey(userID int) string {
	return fmt.Sprintf("%s%d", fortnoxKeyPrefix, userID)
}

// SaveFortnox grava sem expiração
func (s *RedisCredentialStore) SaveFortnox(ctx context.Context, userID int, creds fortnoxdomain.Credentials) error {
	payload, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("erro ao serializar credenciais: %w", err)
	}

	if err := s.client.Set(ctx, FortnoxKey(userID), payload, 0).Err(); err != nil {
		return fmt.Errorf("erro ao salvar credenciais do usuário %d: %w", userID, err)
	}

	return nil
}

func (s *RedisCredentialStore) LoadFortnox(ctx context.Context, userID int) (*fortnoxdomain.Credentials, error) {
	raw, err := s.client.Get(ctx, FortnoxKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao carregar credenciais do usuário %d: %w", userID, err)
	}

	var creds fortnoxdomain.Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, fmt.Errorf("credenciais corrompidas para o usuário %d: %w", userID, err)
	}

	return &creds, nil
}

func (s *RedisCredentialStore) ClearFortnox(ctx context.Context, userID int) error {
	if err := s.client.Del(ctx, FortnoxKey(userID)).Err(); err != nil {
		return fmt.Errorf("erro ao remover credenciais do usuário %d: %w", userID, err)
	}
	return nil
}
