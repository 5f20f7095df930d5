package dto

import "net/http"

// General error codes used by the HTTP layer itself
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeNotFound   = "NOT_FOUND"
)

// domainErrorHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed here fall back to 500.
var domainErrorHTTPStatus = map[string]int{
	ErrCodeNotFound: http.StatusNotFound,

	// Validation failures in domain constructors -> 400 Bad Request
	"INVALID_NAME":     http.StatusBadRequest,
	"INVALID_ADDRESS":  http.StatusBadRequest,
	"INVALID_EMAIL":    http.StatusBadRequest,
	"INVALID_NUMBER":   http.StatusBadRequest,
	"INVALID_BEDROOMS": http.StatusBadRequest,
	"INVALID_BUILDING": http.StatusBadRequest,
	"INVALID_RENT":     http.StatusBadRequest,
	"INVALID_TERM":     http.StatusBadRequest,
	"INVALID_DATE":     http.StatusBadRequest,
	"INVALID_UNIT":     http.StatusBadRequest,
	"INVALID_TENANT":   http.StatusBadRequest,
	"INVALID_LEASE":    http.StatusBadRequest,
	"INVALID_AMOUNT":   http.StatusBadRequest,
	"INVALID_PERIOD":   http.StatusBadRequest,
	"INVALID_METHOD":   http.StatusBadRequest,
	"INVALID_CHEQUE":   http.StatusBadRequest,
	"INVALID_INPUT":    http.StatusBadRequest,
	ErrCodeBadRequest:  http.StatusBadRequest,

	// Conflicts with current resource state -> 409 Conflict
	"UNIT_OCCUPIED":        http.StatusConflict,
	"ALREADY_EXISTS":       http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// Business rule violations -> 422 Unprocessable Entity
	"INVALID_STATE":     http.StatusUnprocessableEntity,
	"RENEWAL_TOO_EARLY": http.StatusUnprocessableEntity,
	"NOTICE_RESOLVED":   http.StatusUnprocessableEntity,

	ErrCodeInternal: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Returns 500 Internal Server Error if the error code is not mapped.
func GetHTTPStatus(code string) int {
	if status, ok := domainErrorHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
