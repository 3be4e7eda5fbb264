package complaint

import "errors"

var (
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrNotOwner          = errors.New("complaint belongs to another employee")
	ErrAlreadyResolved   = errors.New("complaint is already resolved")
)
