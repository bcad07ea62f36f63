// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

func (e *APIError) Error() string { return e.Detail }

// ValidationError wraps multiple field errors. No mutation is performed
// when one of these is returned — validation runs before any write.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// NewFieldValidation builds a ValidationError for a single offending field.
func NewFieldValidation(field, msg string) *ValidationError {
	return NewValidation(map[string]string{field: msg})
}

func (e *ValidationError) Error() string { return e.Detail }

// NotFoundError signals that the target row id does not resolve to an
// existing record.
type NotFoundError struct {
	Detail string `json:"detail"`
}

func NewNotFound(resource string) *NotFoundError {
	return &NotFoundError{Detail: resource + " no encontrado"}
}

func (e *NotFoundError) Error() string { return e.Detail }

// ForbiddenError signals that the authenticated principal is not allowed
// to perform the operation (e.g. the user self-delete guard).
type ForbiddenError struct {
	Detail string `json:"detail"`
}

func NewForbidden(msg string) *ForbiddenError {
	return &ForbiddenError{Detail: msg}
}

func (e *ForbiddenError) Error() string { return e.Detail }

// ConstraintError surfaces a uniqueness or foreign-key violation reported
// by the store at commit time — e.g. two concurrent creates racing on the
// same voucher_number past the pre-flight check.
type ConstraintError struct {
	Detail string `json:"detail"`
}

func NewConstraint(msg string) *ConstraintError {
	return &ConstraintError{Detail: msg}
}

func (e *ConstraintError) Error() string { return e.Detail }
