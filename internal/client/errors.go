package client

import "errors"

var (
	ErrNilConsole  = errors.New("client console is nil")
	ErrNilResolver = errors.New("client resolver is nil")
	ErrNilConfig   = errors.New("client config is nil")
)
