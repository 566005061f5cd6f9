package bootstrap

import (
	"context"
	"encoding/json"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaAuditLogger publica cada evento de auditoría en un topic. Se usa
// cuando AUDIT_KAFKA_BROKERS está configurado; si no, el sink es el de
// stdout.
type KafkaAuditLogger struct {
	writer *kafkago.Writer
}

func NewKafkaAuditLogger(brokers []string, topic string) *KafkaAuditLogger {
	return &KafkaAuditLogger{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafkago.LeastBytes{},
			RequiredAcks: kafkago.RequireOne,
			Async:        true,
		},
	}
}

func (l *KafkaAuditLogger) Log(ctx context.Context, entry AuditLog) {
	payload, err := json.Marshal(struct {
		AuditLog
		OccurredAt time.Time `json:"occurred_at"`
	}{AuditLog: entry, OccurredAt: time.Now().UTC()})
	if err != nil {
		zap.L().Error("audit: no se pudo serializar el evento", zap.Error(err))
		return
	}

	msg := kafkago.Message{
		Key:   []byte(entry.Username),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "action", Value: []byte(entry.Action)},
		},
	}

	if err := l.writer.WriteMessages(ctx, msg); err != nil {
		zap.L().Error("audit: no se pudo publicar el evento", zap.Error(err), zap.String("action", entry.Action))
	}
}

func (l *KafkaAuditLogger) Close() error {
	return l.writer.Close()
}
