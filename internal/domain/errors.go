package domain

import "errors"

var (
	ErrContentUnavailable = errors.New("content unavailable")
	ErrSectionMissing     = errors.New("section not found")
	ErrSectionInvalid     = errors.New("section invalid")
	ErrBooting            = errors.New("terminal is still booting")
)
