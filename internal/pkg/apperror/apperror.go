package apperror

// AppError pairs an HTTP status with a user-facing message, so handlers can
// translate domain failures into responses without per-package mapping.
type AppError struct {
	Code    int    // HTTP status to respond with
	Message string // safe to show to the client
	Err     error  // underlying cause, never exposed in responses
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds the sentinel errors each feature package declares
// (booking.ErrNotFound, pet.ErrPermissionDenied, ...).
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap attaches a status and message to an underlying error while keeping
// the cause reachable through errors.Is/As.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
