package catalog

import "errors"

var (
	// ErrEmptyName indicates a record without a name.
	ErrEmptyName = errors.New("record name is empty")
	// ErrDuplicateRecord indicates two records share a name.
	ErrDuplicateRecord = errors.New("duplicate record name")
	// ErrUnknownField indicates a filter field with no record attribute behind it.
	ErrUnknownField = errors.New("unknown filter field")
	// ErrUnknownOption indicates a record value that no filter option offers.
	ErrUnknownOption = errors.New("value not offered by filter options")
)
