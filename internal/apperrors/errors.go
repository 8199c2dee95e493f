package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller does not own the resource it tried to mutate.
var ErrForbidden = errors.New("forbidden")

// ErrBidTooLow indicates that a proposed bid is below the auction's current minimum.
var ErrBidTooLow = errors.New("bid too low")

// ErrAuctionClosed indicates that a bid arrived after the auction's end time.
var ErrAuctionClosed = errors.New("auction closed")

// BidTooLowError carries the minimum acceptable amount so callers can show it.
// It matches ErrBidTooLow with errors.Is.
type BidTooLowError struct {
	Minimum decimal.Decimal
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid amount must be at least %s", e.Minimum.String())
}

func (e *BidTooLowError) Is(target error) bool {
	return target == ErrBidTooLow
}

// NewBidTooLowError builds a BidTooLowError for the given minimum.
func NewBidTooLowError(minimum decimal.Decimal) error {
	return &BidTooLowError{Minimum: minimum}
}

// AppError wraps an unexpected failure with an HTTP-ish code and a message that is safe to show.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
