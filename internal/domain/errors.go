package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUsernameTaken           = errors.New("username already taken")
	ErrEntrepreneurNotFound    = errors.New("entrepreneur not found")
	ErrStudentGroupNotFound    = errors.New("student group not found")
	ErrProjectNotFound         = errors.New("project not found")
	ErrProjectInterestNotFound = errors.New("project interest not found")
	ErrEventNotFound           = errors.New("event not found")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidSort             = errors.New("invalid sort key")
	ErrDanglingReference       = errors.New("dangling reference")
)

var codes = map[error]string{
	ErrUserNotFound:            "user_not_found",
	ErrUsernameTaken:           "username_taken",
	ErrEntrepreneurNotFound:    "entrepreneur_not_found",
	ErrStudentGroupNotFound:    "student_group_not_found",
	ErrProjectNotFound:         "project_not_found",
	ErrProjectInterestNotFound: "project_interest_not_found",
	ErrEventNotFound:           "event_not_found",
	ErrInvalidStatus:           "invalid_status",
	ErrInvalidSort:             "invalid_sort",
	ErrDanglingReference:       "dangling_reference",
}

// Code returns the stable machine-readable code of the first domain error found
// in err's chain, or "" when err carries none. Codes double as i18n message keys
// ("errors.<code>").
func Code(err error) string {
	if err == nil {
		return ""
	}
	for sentinel, code := range codes {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return ""
}

// IsNotFound reports whether err means a requested record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrEntrepreneurNotFound) ||
		errors.Is(err, ErrStudentGroupNotFound) ||
		errors.Is(err, ErrProjectNotFound) ||
		errors.Is(err, ErrProjectInterestNotFound) ||
		errors.Is(err, ErrEventNotFound)
}

// ReferenceError reports a create request whose foreign key points at nothing.
// Field is the request field holding the bad id.
type ReferenceError struct {
	Field string
	ID    string
	Err   error
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.ID, e.Err)
}

func (e *ReferenceError) Unwrap() error {
	return e.Err
}

// Dangling builds the error returned when a stored foreign key cannot be resolved.
func Dangling(entity, id string) error {
	return fmt.Errorf("%w: %s %s", ErrDanglingReference, entity, id)
}
