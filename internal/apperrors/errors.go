package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidAmount indicates that a decimal amount was NaN or infinite and
// cannot be converted to minor units.
var ErrInvalidAmount = errors.New("invalid monetary amount")

// ErrCurrencyMismatch indicates that amounts of differing currencies were
// combined in an operation that requires a single currency.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// ErrMissingExchangeRate indicates that no exchange rate was available for a
// currency during strict normalization.
var ErrMissingExchangeRate = errors.New("missing exchange rate")

// ErrRateLimited indicates that an upstream fetch was refused because the
// local rate limit for that upstream was reached.
var ErrRateLimited = errors.New("upstream rate limit reached")
