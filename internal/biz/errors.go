package biz

import "errors"

// Custom errors
var (
	ErrContentNotFound = errors.New("content not found")
	ErrInvalidReview   = errors.New("user id and rating are required")
)
