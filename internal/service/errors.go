package service

import "errors"

var (
	ErrNoMentorSelected = errors.New("no mentor selected")
	ErrMentorNotFound   = errors.New("mentor not found")
	ErrNoSessions       = errors.New("no sessions found")
	ErrNotSignedIn      = errors.New("not signed in")
	ErrForbidden        = errors.New("forbidden")
)
