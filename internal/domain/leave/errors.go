package leave

import "errors"

var (
	ErrRequestNotFound  = errors.New("leave request not found")
	ErrAlreadyProcessed = errors.New("leave request already approved or rejected")
	ErrUnknownAction    = errors.New("unknown action, expected approve or reject")
)
