package logic

import "errors"

var (
	ErrLeadNotFound   = errors.New("lead not found")
	ErrRecordNotFound = errors.New("record not found")

	ErrNameRequired    = errors.New("name is required")
	ErrInvalidType     = errors.New("invalid lead type")
	ErrInvalidStatus   = errors.New("invalid lead status")
	ErrInvalidPriority = errors.New("invalid lead priority")
	ErrEmptyUpdate     = errors.New("no fields to update")
	ErrNoIDs           = errors.New("ids must not be empty")
	ErrMissingID       = errors.New("id is required")
	ErrIDNotAllowed    = errors.New("id must not be set on create")
	ErrInvalidReorder  = errors.New("reorder must list every record exactly once")
)

// IsValidation reports whether err is caused by bad client input.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrNameRequired, ErrInvalidType, ErrInvalidStatus, ErrInvalidPriority,
		ErrEmptyUpdate, ErrNoIDs, ErrMissingID, ErrIDNotAllowed, ErrInvalidReorder,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err means the addressed record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrLeadNotFound) || errors.Is(err, ErrRecordNotFound)
}
