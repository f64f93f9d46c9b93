package session

import "errors"

var (
	ErrNilConn         = errors.New("session connection is nil")
	ErrNilPrompter     = errors.New("session prompter is nil")
	ErrWrite           = errors.New("error sending command")
	ErrRead            = errors.New("error receiving reply")
	ErrPrompt          = errors.New("error reading operator choice")
	ErrSessionFinished = errors.New("session already terminated")
)
