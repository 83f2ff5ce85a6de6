package labels

import "errors"

var (
	// ErrEmptyStore is returned when navigation or assignment needs an item
	// but the store holds none.
	ErrEmptyStore = errors.New("no items")

	// ErrInvalidGroup is returned for unknown group names, blank names and
	// attempts to delete the sentinel group.
	ErrInvalidGroup = errors.New("invalid group")

	// ErrDuplicateGroup reports that a group already exists. It is an
	// outcome for the user, not a failure of the session.
	ErrDuplicateGroup = errors.New("group already exists")

	ErrIndexOutOfRange = errors.New("index out of range")
)
