// Package utils provides small helpers shared by the client and the server.
package utils

import "github.com/google/uuid"

// NewID returns a time-ordered UUIDv7 string, so ids in the logs sort by the
// time their session or connection started. It falls back to a random UUIDv4
// if the v7 generator fails.
func NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
