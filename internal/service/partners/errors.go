package partners

import "errors"

var (
	// ErrInvalidAction действие не approve и не reject
	ErrInvalidAction = errors.New("partners: invalid action")

	// ErrRequestNotFound заявки нет в загруженном списке
	ErrRequestNotFound = errors.New("partners: request not found")

	// ErrActionFailed backend не выполнил действие
	ErrActionFailed = errors.New("partners: action failed")
)
