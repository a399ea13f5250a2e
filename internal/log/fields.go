package log

// Common field names for structured logging.
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldOwnerID    = "owner_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldBackend    = "backend"
	FieldBudgetID   = "budget_id"
	FieldAmount     = "amount"
	FieldSpent      = "spent"
	FieldPeriod     = "period"
)

// Standard component names.
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentBackend = "backend"
	ComponentAlerts  = "alerts"
	ComponentWorker  = "worker"
	ComponentExport  = "export"
)
