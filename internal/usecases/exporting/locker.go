package exporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/vfg2006/consultant-dashboard-api/pkg/log"
)

var ErrExportInProgress = errors.New("export already in progress")

// ExportLocker garante uma exportação por usuário por vez
type ExportLocker interface {
	// Acquire retorna ErrExportInProgress quando outro processo já detém o lock
	Acquire(ctx context.Context, userID int) (func(), error)
}

type RedisExportLocker struct {
	client *redislock.Client
	ttl    time.Duration
}

func NewRedisExportLocker(client *redislock.Client, ttl time.Duration) ExportLocker {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &RedisExportLocker{client: client, ttl: ttl}
}

func exportLockKey(userID int) string {
	return fmt.Sprintf("lock:fortnox-export:%d", userID)
}

func (l *RedisExportLocker) Acquire(ctx context.Context, userID int) (func(), error) {
	lock, err := l.client.Obtain(ctx, exportLockKey(userID), l.ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, ErrExportInProgress
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao obter lock de exportação: %w", err)
	}

	release := func() {
		// contexto próprio para liberar mesmo com a requisição cancelada
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := lock.Release(releaseCtx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			log.ForContext(ctx).WithError(err).Warn("erro ao liberar lock de exportação")
		}
	}

	return release, nil
}
