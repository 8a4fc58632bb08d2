package service

import "errors"

var (
	ErrInternal      = errors.New("internal server error")
	ErrMissingSecret = errors.New("secret is required")
	ErrInvalidSecret = errors.New("invalid secret")
	ErrPostNotFound  = errors.New("post not found")

	ErrFileMustBeImage              = errors.New("file must be an image")
	ErrFailedToUploadPostImageToCDN = errors.New("failed to upload post image to CDN")
)
