package timing

import "errors"

// Office timing domain errors
var (
	ErrTimingNotFound      = errors.New("office timing not found")
	ErrDuplicateDepartment = errors.New("an active timing already exists for this department")
	ErrInvalidEventType    = errors.New("event type must be check_in or check_out")
)
