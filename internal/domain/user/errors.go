package user

import "errors"

var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrManagerAccessRequired  = errors.New("manager access required")
)
