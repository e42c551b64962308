package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller has no access to the requested account or client.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidAmount indicates a non-positive or missing amount.
var ErrInvalidAmount = errors.New("amount must be positive")

// ErrInsufficientFunds indicates that a debit would cross the account's allowed floor.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrSameAccount indicates a transfer whose source and target are the same account.
var ErrSameAccount = errors.New("cannot transfer to the same account")

// ErrCurrencyMismatch indicates that two accounts must share a currency but do not.
var ErrCurrencyMismatch = errors.New("accounts must have the same currency")

// ErrNoRateAvailable indicates that no exchange rate is configured for a currency pair.
var ErrNoRateAvailable = errors.New("no exchange rate available")

// ErrInvalidArgument indicates a missing or malformed required parameter.
var ErrInvalidArgument = errors.New("invalid argument")

// IsClientError reports whether err was caused by the caller's input rather
// than by the system, so handlers can answer with 400.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrSameAccount) ||
		errors.Is(err, ErrCurrencyMismatch) ||
		errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrNoRateAvailable) ||
		errors.Is(err, ErrInsufficientFunds)
}
