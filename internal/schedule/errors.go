package schedule

import "errors"

var (
	ErrEmptyFile      = errors.New("uploaded file is empty")
	ErrBadModelOutput = errors.New("extraction model returned unusable output")
)
