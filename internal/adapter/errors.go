package adapter

import "errors"

var (
	ErrNoCredentials    = errors.New("no stored credentials")
	ErrBadCredentials   = errors.New("credentials rejected by remote")
	ErrNetwork          = errors.New("remote unreachable")
	ErrRequestFailed    = errors.New("remote request failed")
	ErrUnknownPartition = errors.New("unknown partition")
	ErrConflict         = errors.New("commit conflicts with remote state")
	ErrInvalidPayload   = errors.New("invalid payload")
)
