package connection

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectRedisWithRetry abre la conexión donde vive el estado de sesión
// (token, usuario, notificaciones). Sin redis no hay login, así que se
// insiste antes de rendirse.
func ConnectRedisWithRetry(addr string, maxRetries int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err == nil {
			zap.L().Info("✅ conectado a redis", zap.String("addr", addr))
			return rdb, nil
		}

		zap.L().Warn("⚠️ reintento de conexión a redis falló",
			zap.Int("attempt", i),
			zap.Int("max", maxRetries),
			zap.Error(err),
		)
		time.Sleep(5 * time.Second)
	}

	return nil, fmt.Errorf("no se pudo conectar a redis en %s", addr)
}
