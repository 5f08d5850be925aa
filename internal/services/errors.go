package services

import "errors"

var (
	ErrUploadInProgress = errors.New("an upload is already in progress")
	ErrInvalidMapping   = errors.New("invalid sheet mapping")
	ErrForbidden        = errors.New("not allowed")
	ErrPersonNotFound   = errors.New("person details not found")
	ErrUploadNotFound   = errors.New("upload not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("user with this email already exists")
	ErrProtectedUser    = errors.New("user cannot be deleted")
)
