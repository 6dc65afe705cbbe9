package service

import "errors"

// Kinds. Every *Error unwraps to exactly one of them, so transport code can
// branch on the kind and tests on the specific error.
var (
	ErrValidation  = errors.New("validation")
	ErrNotFound    = errors.New("not found")
	ErrForbidden   = errors.New("forbidden")
	ErrNotEligible = errors.New("not eligible")
	ErrConflict    = errors.New("conflict")
	ErrDecode      = errors.New("decode")
)

type Error struct {
	Kind   error
	Code   string
	Reason string
}

func (e *Error) Error() string { return e.Reason }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, code, reason string) *Error {
	return &Error{Kind: kind, Code: code, Reason: reason}
}

// order placement
var (
	ErrMissingRestaurant       = newError(ErrValidation, "missing_restaurant", "restaurant id is required")
	ErrEmptyOrder              = newError(ErrValidation, "empty_order", "order must contain at least one item")
	ErrUnknownCustomer         = newError(ErrNotFound, "unknown_customer", "customer not found")
	ErrUnknownRestaurant       = newError(ErrNotFound, "unknown_restaurant", "restaurant not found")
	ErrUnknownMenuItem         = newError(ErrNotFound, "unknown_menu_item", "menu item not found")
	ErrMenuItemNotInRestaurant = newError(ErrValidation, "menu_item_not_in_restaurant", "menu item does not belong to the restaurant")
	ErrInvalidQuantity         = newError(ErrValidation, "invalid_quantity", "quantity must be between 1 and 999")
)

// order status
var (
	ErrMissingStatus  = newError(ErrValidation, "missing_status", "status is required")
	ErrUnknownOrder   = newError(ErrNotFound, "unknown_order", "order not found")
	ErrNotOrderOwner  = newError(ErrForbidden, "not_order_owner", "only the customer who placed the order can change its status")
	ErrNotOrderViewer = newError(ErrForbidden, "not_order_viewer", "only the customer who placed the order can see its history")
)

// reviews
var (
	ErrMissingScore      = newError(ErrValidation, "missing_score", "score is required")
	ErrScoreOutOfRange   = newError(ErrValidation, "score_out_of_range", "score must be between 1 and 5")
	ErrCommentTooLong    = newError(ErrValidation, "comment_too_long", "comment must be at most 500 characters")
	ErrReviewNotEligible = newError(ErrNotEligible, "review_not_eligible", "only customers with a completed order containing the dish can review it")
)

// accounts and catalog
var (
	ErrMissingFields      = newError(ErrValidation, "missing_fields", "required fields are missing")
	ErrInvalidCPF         = newError(ErrValidation, "invalid_cpf", "cpf must have 11 digits")
	ErrInvalidCNPJ        = newError(ErrValidation, "invalid_cnpj", "cnpj must have 14 digits")
	ErrInvalidEmail       = newError(ErrValidation, "invalid_email", "email is not valid")
	ErrNegativePrice      = newError(ErrValidation, "negative_price", "price must not be negative")
	ErrPriceTooHigh       = newError(ErrValidation, "price_too_high", "price must be below 100000000")
	ErrFieldTooLong       = newError(ErrValidation, "field_too_long", "field is too long")
	ErrCPFTaken           = newError(ErrConflict, "cpf_taken", "cpf already registered")
	ErrCNPJTaken          = newError(ErrConflict, "cnpj_taken", "cnpj already registered")
	ErrEmailTaken         = newError(ErrConflict, "email_taken", "email already registered")
	ErrInvalidCredentials = newError(ErrForbidden, "invalid_credentials", "invalid email or password")
	ErrNotAccountOwner    = newError(ErrForbidden, "not_account_owner", "accounts can only be read or changed by their owner")
	ErrNotMenuItemOwner   = newError(ErrForbidden, "not_menu_item_owner", "menu items can only be changed by their restaurant")
	ErrAccountInUse       = newError(ErrConflict, "account_in_use", "account has orders and cannot be deleted")
	ErrMenuItemOrdered    = newError(ErrConflict, "menu_item_ordered", "menu item appears in orders and cannot be deleted")
)

// IsDomain reports whether err is one of the service's own errors rather than
// an infrastructure failure.
func IsDomain(err error) bool {
	var e *Error
	return errors.As(err, &e) || errors.Is(err, ErrDecode)
}
