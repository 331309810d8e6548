package session

import "time"

// Strategy issues and validates opaque tokens that bind a browser session to
// its server-side workspace.
type Strategy interface {
	IssueToken(workspaceID string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
