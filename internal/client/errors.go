package client

import "errors"

var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("wrong number of arguments")
	ErrLoginRequired  = errors.New("login required")
	ErrLoginRejected  = errors.New("login rejected")
	ErrUnknownKey     = errors.New("no entry with this key")
	ErrUnsavedChanges = errors.New("unsaved changes would be discarded")
	ErrNoChange       = errors.New("edit changes neither key nor value")
)
