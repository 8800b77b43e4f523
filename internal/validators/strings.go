package validators

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/MKhiriev/go-strings-editor/models"
)

// Field name constants restrict validation to a subset of rules.
const (
	// FieldKey targets the entry key.
	FieldKey = "key"

	// FieldValue targets the entry value.
	FieldValue = "value"

	// FieldPlatform targets the partition platform.
	FieldPlatform = "platform"

	// FieldLanguage targets the optional partition language tag.
	FieldLanguage = "language"

	// FieldMessage targets the commit message of a payload.
	FieldMessage = "message"

	// FieldChanges requires a payload to carry at least one change and
	// validates every insertion and edit.
	FieldChanges = "changes"

	// FieldUniqueKeys requires keys to be unique: across a baseline, or
	// across insertions and edit targets of a payload.
	FieldUniqueKeys = "unique_keys"

	// FieldEntries validates every entry of a loaded state.
	FieldEntries = "entries"
)

// StringsValidator validates entries, partitions, commit payloads and loaded
// states.
type StringsValidator struct {
}

func NewStringsValidator() Validator {
	return &StringsValidator{}
}

func (v *StringsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Entry:
		return v.validateEntry(ctx, value, fields...)
	case *models.Entry:
		return v.validateEntry(ctx, *value, fields...)

	case models.Partition:
		return v.validatePartition(ctx, value, fields...)
	case *models.Partition:
		return v.validatePartition(ctx, *value, fields...)

	case models.CommitPayload:
		return v.validateCommitPayload(ctx, value, fields...)
	case *models.CommitPayload:
		return v.validateCommitPayload(ctx, *value, fields...)

	case models.LoadedState:
		return v.validateLoadedState(ctx, value, fields...)
	case *models.LoadedState:
		return v.validateLoadedState(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *StringsValidator) validateEntry(_ context.Context, entry models.Entry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey, FieldValue}
	}

	for _, f := range fields {
		switch f {
		case FieldKey:
			if entry.Key == "" {
				return ErrEmptyKey
			}
			if strings.TrimSpace(entry.Key) != entry.Key {
				return fmt.Errorf("%q: %w", entry.Key, ErrUntrimmedInput)
			}
		case FieldValue:
			if entry.Value == "" {
				return fmt.Errorf("%s: %w", entry.Key, ErrEmptyValue)
			}
			if strings.TrimSpace(entry.Value) != entry.Value {
				return fmt.Errorf("%s: %w", entry.Key, ErrUntrimmedInput)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *StringsValidator) validatePartition(_ context.Context, partition models.Partition, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPlatform, FieldLanguage}
	}

	for _, f := range fields {
		switch f {
		case FieldPlatform:
			if !partition.Platform.Valid() {
				return fmt.Errorf("%q: %w", partition.Platform, ErrInvalidPlatform)
			}
		case FieldLanguage:
			if partition.Language == "" {
				continue
			}
			if _, err := language.Parse(partition.Language); err != nil {
				return fmt.Errorf("%q: %w", partition.Language, ErrInvalidLanguage)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *StringsValidator) validateCommitPayload(ctx context.Context, payload models.CommitPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessage, FieldChanges, FieldUniqueKeys}
	}

	insertions := payload.Insertions()
	edits := payload.Edits()

	for _, f := range fields {
		switch f {
		case FieldMessage:
			if strings.TrimSpace(payload.Message()) == "" {
				return ErrEmptyCommitMessage
			}
		case FieldChanges:
			if payload.IsEmpty() {
				return ErrEmptyChangeSet
			}
			for i, entry := range insertions {
				if err := v.validateEntry(ctx, entry); err != nil {
					return fmt.Errorf("validation error at insertion %d: %w", i, err)
				}
				if entry.Key == models.ImmutableKey {
					return fmt.Errorf("insertion %d: %s: %w", i, entry.Key, ErrImmutableKey)
				}
			}
			for original, entry := range edits {
				if err := v.validateEntry(ctx, entry); err != nil {
					return fmt.Errorf("validation error at edit of %s: %w", original, err)
				}
				if original == models.ImmutableKey || entry.Key == models.ImmutableKey {
					return fmt.Errorf("edit of %s: %w", original, ErrImmutableKey)
				}
			}
		case FieldUniqueKeys:
			seen := make(map[string]struct{}, len(insertions)+len(edits))
			for _, entry := range insertions {
				if _, dup := seen[entry.Key]; dup {
					return fmt.Errorf("%s: %w", entry.Key, ErrDuplicateKey)
				}
				seen[entry.Key] = struct{}{}
			}
			for _, entry := range edits {
				if _, dup := seen[entry.Key]; dup {
					return fmt.Errorf("%s: %w", entry.Key, ErrDuplicateKey)
				}
				seen[entry.Key] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *StringsValidator) validateLoadedState(ctx context.Context, state models.LoadedState, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntries, FieldUniqueKeys}
	}

	for _, f := range fields {
		switch f {
		case FieldEntries:
			if err := v.validatePartition(ctx, state.Partition); err != nil {
				return err
			}
			for i, entry := range state.Entries {
				if err := v.validateEntry(ctx, entry); err != nil {
					return fmt.Errorf("validation error at row %d: %w", i, err)
				}
				if entry.Partition != state.Partition {
					return fmt.Errorf("row %d (%s): %w", i, entry.Key, ErrPartitionMismatch)
				}
			}
		case FieldUniqueKeys:
			seen := make(map[string]int, len(state.Entries))
			for i, entry := range state.Entries {
				if first, dup := seen[entry.Key]; dup {
					return fmt.Errorf("%s at rows %d and %d: %w", entry.Key, first, i, ErrDuplicateKey)
				}
				seen[entry.Key] = i
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
