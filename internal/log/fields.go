package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldCustomerID = "customer_id"
	FieldAccountID  = "account_id"
	FieldUserID     = "user_id"
	FieldBackend    = "backend"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentEngine  = "engine"
	ComponentSource  = "source"
	ComponentProfile = "profile"
	ComponentTrace   = "trace"
)
