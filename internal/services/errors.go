package services

import "errors"

// Sentinel errors the handlers translate into 404 responses. Wrapping is
// allowed; handlers match with errors.Is.
var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrItemNotFound      = errors.New("item not found")
	ErrInstanceNotFound  = errors.New("instance not found")
	ErrItemModelNotFound = errors.New("item has no model data")
)
