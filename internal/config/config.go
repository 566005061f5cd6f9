package config

import (
	"os"
	"strings"
	"time"
)

// Config agrupa todo lo que la aplicación lee del entorno. Se carga una
// sola vez en el arranque y se inyecta; ningún paquete vuelve a leer
// os.Getenv después de BuildApp.
type Config struct {
	Port       string
	APIBaseURL string
	RedisAddr  string

	// TTL máximo de una sesión cuando el token del backend no trae exp.
	SessionTTL time.Duration

	// Espera máxima para crear la sesión de chat antes de degradar el
	// widget a "no configurado".
	ChatBootstrapTimeout time.Duration

	AuditKafkaBrokers []string
	AuditKafkaTopic   string
}

func Load() Config {
	cfg := Config{
		Port:                 getenv("PORT", "3000"),
		APIBaseURL:           getenv("API_BASE_URL", "http://localhost:8080/api"),
		RedisAddr:            getenv("REDIS_ADDR", "localhost:6379"),
		SessionTTL:           getdur("SESSION_TTL", 8*time.Hour),
		ChatBootstrapTimeout: getdur("CHAT_BOOTSTRAP_TIMEOUT", 5*time.Second),
		AuditKafkaTopic:      getenv("AUDIT_KAFKA_TOPIC", "planilla.audit"),
	}

	if brokers := os.Getenv("AUDIT_KAFKA_BROKERS"); brokers != "" {
		cfg.AuditKafkaBrokers = strings.Split(brokers, ",")
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getdur(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
