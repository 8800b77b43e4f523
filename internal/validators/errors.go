package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyKey           = errors.New("key is required")
	ErrEmptyValue         = errors.New("value is required")
	ErrUntrimmedInput     = errors.New("key and value must not have surrounding whitespace")
	ErrImmutableKey       = errors.New("key cannot be changed")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrInvalidPlatform    = errors.New("invalid platform")
	ErrInvalidLanguage    = errors.New("invalid language tag")
	ErrEmptyCommitMessage = errors.New("commit message is required")
	ErrEmptyChangeSet     = errors.New("change set is empty")
	ErrPartitionMismatch  = errors.New("entry belongs to another partition")
)
