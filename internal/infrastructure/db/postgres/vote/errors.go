package vote

import "errors"

var (
	ErrUserOrFileNotFound = errors.New("user or file not found")
	ErrAlreadyVoted       = errors.New("user has already voted for this file")
	ErrNotVoted           = errors.New("user has not voted for this file")
)
