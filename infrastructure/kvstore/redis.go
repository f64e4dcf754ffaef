package kvstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/consultant-dashboard-api/pkg/log"
)

// NewRedisClient abre a conexão a partir de uma URL redis://[:senha@]host:porta/db e valida com PING
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("URL do redis inválida: %w", err)
	}
	opts.PoolSize = 20

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("erro ao conectar ao redis em %s: %w", opts.Addr, err)
	}

	log.L.WithField("addr", opts.Addr).Info("conectado ao redis")

	return client, nil
}
