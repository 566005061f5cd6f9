package app

import (
	"time"

	"github.com/Mauricio62/planilla-web/internal/backend"
	"github.com/Mauricio62/planilla-web/internal/bootstrap"
	"github.com/Mauricio62/planilla-web/internal/config"
	"github.com/Mauricio62/planilla-web/internal/shared/connection"
	"github.com/Mauricio62/planilla-web/internal/webui"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp arma toda la aplicación: conexiones, middleware y rutas.
// Devuelve el router listo para servir y el sink de auditoría, que el
// servidor usa también durante el apagado.
func BuildApp(cfg config.Config) (*gin.Engine, bootstrap.AuditLogger, error) {
	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return nil, nil, err
	}

	api := backend.NewClient(cfg.APIBaseURL, 30*time.Second, zap.L().Named("backend"))

	var audit bootstrap.AuditLogger
	if len(cfg.AuditKafkaBrokers) > 0 {
		audit = bootstrap.NewKafkaAuditLogger(cfg.AuditKafkaBrokers, cfg.AuditKafkaTopic)
		zap.L().Info("✅ auditoría hacia kafka", zap.Strings("brokers", cfg.AuditKafkaBrokers))
	} else {
		audit = bootstrap.NewStdoutAuditLogger()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(webui.Templates())

	if err := registerModules(router, cfg, rdb, api, audit); err != nil {
		return nil, nil, err
	}

	return router, audit, nil
}
