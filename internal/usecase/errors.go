package usecase

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrSlugTaken          = errors.New("slug is already in use")
	ErrNameTaken          = errors.New("name is already in use")
	ErrEmailTaken         = errors.New("email or username is already in use")
	ErrCategoryNotFound   = errors.New("category does not exist")
	ErrCommentsDisabled   = errors.New("comments are disabled for this post")
	ErrInvalidParent      = errors.New("parent comment is invalid")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAdmin           = errors.New("admin access required")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrFileTooLarge       = errors.New("file exceeds the maximum upload size")
)
