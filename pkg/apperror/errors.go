package apperror

import (
	"errors"
	"fmt"
)

// Kind identifies a class of failure the console can report to the user.
type Kind string

const (
	KindDuplicateUsername             Kind = "DUPLICATE_USERNAME"
	KindInvalidRole                   Kind = "INVALID_ROLE"
	KindInvalidCredentials            Kind = "INVALID_CREDENTIALS"
	KindDuplicateCategory             Kind = "DUPLICATE_CATEGORY"
	KindDuplicateProductOrBadCategory Kind = "DUPLICATE_PRODUCT_OR_BAD_CATEGORY"
	KindNotACustomer                  Kind = "NOT_A_CUSTOMER"
	KindInvalidRating                 Kind = "INVALID_RATING"
	KindDuplicateFeedback             Kind = "DUPLICATE_FEEDBACK"
	KindNotFoundOrNotOwned            Kind = "NOT_FOUND_OR_NOT_OWNED"
	KindNotFound                      Kind = "NOT_FOUND"
	KindProductNotFound               Kind = "PRODUCT_NOT_FOUND"
	KindCategoryNotFound              Kind = "CATEGORY_NOT_FOUND"
	KindInvalidInput                  Kind = "INVALID_INPUT"
	KindStorageUnavailable            Kind = "STORAGE_UNAVAILABLE"
	KindAccessDenied                  Kind = "ACCESS_DENIED"
)

// AppError is a typed failure returned across the service boundary.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError of the same Kind, so the sentinels below work with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Kind == e.Kind
}

func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// Wrap attaches a cause; the cause is logged but never shown to the user.
func Wrap(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

var (
	ErrDuplicateUsername             = New(KindDuplicateUsername, "Username already exists")
	ErrInvalidRole                   = New(KindInvalidRole, "Invalid role")
	ErrInvalidCredentials            = New(KindInvalidCredentials, "Invalid login credentials")
	ErrDuplicateCategory             = New(KindDuplicateCategory, "Category already exists")
	ErrDuplicateProductOrBadCategory = New(KindDuplicateProductOrBadCategory, "Product already exists or invalid category ID")
	ErrNotACustomer                  = New(KindNotACustomer, "Customer profile not found")
	ErrInvalidRating                 = New(KindInvalidRating, "Rating must be between 1 and 5")
	ErrDuplicateFeedback             = New(KindDuplicateFeedback, "You have already given feedback for this product")
	ErrNotFoundOrNotOwned            = New(KindNotFoundOrNotOwned, "Feedback not found or not yours")
	ErrNotFound                      = New(KindNotFound, "Feedback ID not found")
	ErrProductNotFound               = New(KindProductNotFound, "Product not found")
	ErrCategoryNotFound              = New(KindCategoryNotFound, "Category not found")
	ErrStorageUnavailable            = New(KindStorageUnavailable, "Database error")
	ErrAccessDenied                  = New(KindAccessDenied, "Access denied")

	// Same kind as ErrDuplicateProductOrBadCategory, with the specific cause.
	ErrDuplicateProduct = New(KindDuplicateProductOrBadCategory, "Product already exists")
	ErrInvalidCategory  = New(KindDuplicateProductOrBadCategory, "Invalid category ID")
)

// StorageUnavailable wraps a driver error that is not a known constraint violation.
func StorageUnavailable(op string, err error) *AppError {
	return Wrap(KindStorageUnavailable, "Database error while trying to "+op, err)
}

// InvalidInput reports which fields failed validation.
func InvalidInput(detail string) *AppError {
	return New(KindInvalidInput, "Invalid input: "+detail)
}

// KindOf returns the Kind carried by err, or "" for foreign errors.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// Message is the one-line text shown to the user for err.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Unexpected error"
}
