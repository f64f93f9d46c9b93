package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("version is not specified")
	ErrNilColumnRepository   = errors.New("column repository is nil")
	ErrQuitHasNoReply        = errors.New("quit command has no reply")
)
