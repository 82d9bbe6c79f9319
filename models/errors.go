package models

import "errors"

var (
	// ErrPaymentConflict is returned when a non-deleted payment already
	// exists for the same workspace, account and billing month.
	ErrPaymentConflict = errors.New("a payment already exists for this billing month")

	ErrPaymentNotFound   = errors.New("payment not found")
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrAccountNotFound   = errors.New("account not found")

	// ErrWorkspaceDontBelongsToAccount is rejected before any side effect
	// when the (workspace, account) pair is inconsistent.
	ErrWorkspaceDontBelongsToAccount = errors.New("WORKSPACE_DONT_BELONGS_TO_ACCOUNT")

	// ErrMissingExceededMessagePrice is a workspace misconfiguration: a
	// message limit without an overage price aborts the whole computation.
	ErrMissingExceededMessagePrice = errors.New("workspace has a message limit but no exceeded message price")

	// ErrPaymentNotOpened guards operations that only apply to open
	// payments (delete, close, manual items).
	ErrPaymentNotOpened = errors.New("payment is not opened")

	// ErrMissingGatewayPayment is returned when an invoice is requested
	// for a payment that was never charged on the gateway.
	ErrMissingGatewayPayment = errors.New("payment has no gateway payment id")
)
