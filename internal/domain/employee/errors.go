package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrMatriculeExists  = errors.New("matricule already registered")
	ErrInvalidPhotoType = errors.New("photo must be jpg, jpeg or png")
)
