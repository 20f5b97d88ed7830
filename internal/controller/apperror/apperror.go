// Package apperror defines the sentinel business errors shared between
// domain services and the HTTP layer.
package apperror

import "errors"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrListingNotFound = errors.New("listing not found")
	ErrDisputeNotFound = errors.New("dispute not found")

	ErrForbidden = errors.New("forbidden")
	ErrAdminOnly = errors.New("admin only")

	ErrInvalidTransition    = errors.New("invalid transition")
	ErrOnlySellerCanAdvance = errors.New("only seller can advance")
	ErrOnlyBuyerCanConfirm  = errors.New("only buyer can confirm")
	ErrInvalidOtp           = errors.New("invalid otp")
	ErrCancellationDenied   = errors.New("cancellation not allowed for this party")

	ErrListingUnavailable = errors.New("listing unavailable")
	ErrSellerOwnListing   = errors.New("seller cannot buy own listing")

	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrCodEntryNotFound    = errors.New("pending cod entry not found")
)
