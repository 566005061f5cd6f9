package bootstrap

import "context"

// Acciones auditadas. Son eventos de negocio, no de infraestructura:
// cada una corresponde a algo que un usuario hizo sobre la planilla.
const (
	AuditLogin              = "LOGIN"
	AuditLogout             = "LOGOUT"
	AuditAttendanceBulkSave = "ATTENDANCE_BULK_SAVE"
	AuditPayrollSave        = "PAYROLL_SAVE"
	AuditServerShutdown     = "SERVER_SHUTDOWN"
)

type AuditLog struct {
	Action   string         `json:"action"`
	Username string         `json:"username,omitempty"`
	Message  string         `json:"message"`
	Meta     map[string]any `json:"meta,omitempty"`
}

// AuditLogger registra el evento al mejor esfuerzo: un fallo del sink
// nunca corta la operación que lo originó.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
