package pkg

// AppError is the domain error carried from use cases to the HTTP edge.
// Code is a stable machine-readable identifier; Message is safe to show to
// the client; Cause (when present) stays server-side.

type AppError struct {
	Code       string
	Message    string
	Cause      error
	HTTPStatus int
}

type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewDomainError(code, message string, cause error, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Cause:      cause,
		HTTPStatus: httpStatus,
	}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return NewDomainError(code, message, nil, httpStatus)
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Code + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// ToHTTPError strips the server-side cause before serialization.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}
