package session

import "errors"

var (
	ErrSessionNotFound = errors.New("session.repository: session not found")
	ErrLoad            = errors.New("session.repository: failed to load sessions")
	ErrSave            = errors.New("session.repository: failed to save sessions")
)
