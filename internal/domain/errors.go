package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for the few failures the landing page can produce.
var (
	ErrUnknownAction   = errors.New("no callback is bound to this action")
	ErrDuplicateAction = errors.New("an action with this name is already bound")
	ErrInvalidAction   = errors.New("action name and callback are required")
	ErrInvalidContent  = errors.New("content catalog is invalid")
	ErrInvalidLead     = errors.New("contact request is invalid")
)
