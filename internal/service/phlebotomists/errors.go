package phlebotomists

import "errors"

var (
	// ErrNotFound флеботомиста нет в загруженном списке
	ErrNotFound = errors.New("phlebotomists: phlebotomist not found")

	// ErrActionFailed backend не выполнил toggle/delete
	ErrActionFailed = errors.New("phlebotomists: action failed")
)
