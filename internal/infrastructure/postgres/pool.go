package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/sagarkwankhade/CRM-Version-One/pkg/config"
)

// Parámetros de conexión al arranque: reintentos acotados con backoff fijo.
// Pasados los intentos, el proceso no arranca; por request no se reintenta.
const (
	connectAttempts = 3
	connectBackoff  = 4 * time.Second
)

// NewPool crea el pool de conexiones PostgreSQL con reintento acotado.
// El pool es el único estado compartido del proceso; Close() es el teardown
// explícito y Ping() la sonda de readiness.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				return pool, nil
			}
			pool.Close()
		}
		lastErr = err
		log.Warn().Err(err).
			Int("attempt", attempt).
			Int("max_attempts", connectAttempts).
			Msg("conexión a PostgreSQL fallida")
		if attempt < connectAttempts {
			select {
			case <-time.After(connectBackoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("conectar a PostgreSQL tras %d intentos: %w", connectAttempts, lastErr)
}
