// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-strings-editor/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var iosEN = models.Partition{Platform: models.PlatformIOS, Language: "en"}

func validPayload() models.CommitPayload {
	return models.NewCommitPayload(
		[]models.Entry{models.NewEntry("new_key", "New", iosEN)},
		map[string]models.Entry{"greeting": models.NewEntry("greeting", "Hello!", iosEN)},
		"add new_key",
	)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewStringsValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("Entry value and pointer", func(t *testing.T) {
		e := models.NewEntry("k", "v", iosEN)
		require.NoError(t, v.Validate(ctx, e))
		require.NoError(t, v.Validate(ctx, &e))
	})

	t.Run("Partition value and pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, iosEN))
		require.NoError(t, v.Validate(ctx, &iosEN))
	})

	t.Run("CommitPayload value and pointer", func(t *testing.T) {
		p := validPayload()
		require.NoError(t, v.Validate(ctx, p))
		require.NoError(t, v.Validate(ctx, &p))
	})

	t.Run("LoadedState value and pointer", func(t *testing.T) {
		s := models.LoadedState{
			Entries:   []models.Entry{models.NewEntry("a", "1", iosEN)},
			Partition: iosEN,
		}
		require.NoError(t, v.Validate(ctx, s))
		require.NoError(t, v.Validate(ctx, &s))
	})
}

// ---------------------------------------------------------------------------
// Entry
// ---------------------------------------------------------------------------

func TestValidate_Entry(t *testing.T) {
	v := NewStringsValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		entry   models.Entry
		fields  []string
		wantErr error
	}{
		{name: "valid", entry: models.NewEntry("k", "v", iosEN)},
		{name: "empty key", entry: models.NewEntry("", "v", iosEN), wantErr: ErrEmptyKey},
		{name: "empty value", entry: models.NewEntry("k", "", iosEN), wantErr: ErrEmptyValue},
		{name: "untrimmed key", entry: models.NewEntry(" k", "v", iosEN), wantErr: ErrUntrimmedInput},
		{name: "untrimmed value", entry: models.NewEntry("k", "v\n", iosEN), wantErr: ErrUntrimmedInput},
		{name: "key only ignores empty value", entry: models.NewEntry("k", "", iosEN), fields: []string{FieldKey}},
		{name: "unknown field", entry: models.NewEntry("k", "v", iosEN), fields: []string{"nope"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.entry, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// Partition
// ---------------------------------------------------------------------------

func TestValidate_Partition(t *testing.T) {
	v := NewStringsValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.DefaultPartition))
	assert.NoError(t, v.Validate(ctx, models.Partition{Platform: models.PlatformAndroid, Language: "pt-BR"}))
	assert.ErrorIs(t, v.Validate(ctx, models.Partition{Platform: "web"}), ErrInvalidPlatform)
	assert.ErrorIs(t, v.Validate(ctx, models.Partition{Platform: models.PlatformIOS, Language: "not a tag"}), ErrInvalidLanguage)

	// language is not checked when only the platform is requested
	assert.NoError(t, v.Validate(ctx, models.Partition{Platform: models.PlatformIOS, Language: "not a tag"}, FieldPlatform))
}

// ---------------------------------------------------------------------------
// CommitPayload
// ---------------------------------------------------------------------------

func TestValidate_CommitPayload(t *testing.T) {
	v := NewStringsValidator()
	ctx := context.Background()

	t.Run("empty message", func(t *testing.T) {
		p := models.NewCommitPayload(validPayload().Insertions(), nil, "   ")
		assert.ErrorIs(t, v.Validate(ctx, p), ErrEmptyCommitMessage)
	})

	t.Run("no changes", func(t *testing.T) {
		p := models.NewCommitPayload(nil, nil, "msg")
		assert.ErrorIs(t, v.Validate(ctx, p), ErrEmptyChangeSet)
	})

	t.Run("insertion with empty value", func(t *testing.T) {
		p := models.NewCommitPayload([]models.Entry{models.NewEntry("k", "", iosEN)}, nil, "msg")
		err := v.Validate(ctx, p)
		assert.ErrorIs(t, err, ErrEmptyValue)
		assert.Contains(t, err.Error(), "insertion 0")
	})

	t.Run("insertion of immutable key", func(t *testing.T) {
		p := models.NewCommitPayload([]models.Entry{models.NewEntry(models.ImmutableKey, "2", iosEN)}, nil, "msg")
		assert.ErrorIs(t, v.Validate(ctx, p), ErrImmutableKey)
	})

	t.Run("edit of immutable key", func(t *testing.T) {
		p := models.NewCommitPayload(nil, map[string]models.Entry{
			models.ImmutableKey: models.NewEntry(models.ImmutableKey, "2", iosEN),
		}, "msg")
		assert.ErrorIs(t, v.Validate(ctx, p), ErrImmutableKey)
	})

	t.Run("rename onto immutable key", func(t *testing.T) {
		p := models.NewCommitPayload(nil, map[string]models.Entry{
			"a": models.NewEntry(models.ImmutableKey, "2", iosEN),
		}, "msg")
		assert.ErrorIs(t, v.Validate(ctx, p), ErrImmutableKey)
	})

	t.Run("insertion collides with edit target", func(t *testing.T) {
		p := models.NewCommitPayload(
			[]models.Entry{models.NewEntry("b", "1", iosEN)},
			map[string]models.Entry{"a": models.NewEntry("b", "2", iosEN)},
			"msg",
		)
		err := v.Validate(ctx, p)
		assert.ErrorIs(t, err, ErrDuplicateKey)
		assert.Contains(t, err.Error(), "b")
	})

	t.Run("message only", func(t *testing.T) {
		p := models.NewCommitPayload(nil, nil, "msg")
		assert.NoError(t, v.Validate(ctx, p, FieldMessage))
	})
}

// ---------------------------------------------------------------------------
// LoadedState
// ---------------------------------------------------------------------------

func TestValidate_LoadedState(t *testing.T) {
	v := NewStringsValidator()
	ctx := context.Background()

	t.Run("duplicate keys", func(t *testing.T) {
		s := models.LoadedState{
			Entries: []models.Entry{
				models.NewEntry("a", "1", iosEN),
				models.NewEntry("b", "2", iosEN),
				models.NewEntry("a", "3", iosEN),
			},
			Partition: iosEN,
		}
		err := v.Validate(ctx, s)
		require.ErrorIs(t, err, ErrDuplicateKey)
		assert.Contains(t, err.Error(), "rows 0 and 2")
	})

	t.Run("entry from another partition", func(t *testing.T) {
		s := models.LoadedState{
			Entries:   []models.Entry{models.NewEntry("a", "1", models.DefaultPartition)},
			Partition: iosEN,
		}
		assert.ErrorIs(t, v.Validate(ctx, s), ErrPartitionMismatch)
	})

	t.Run("baseline value missing", func(t *testing.T) {
		s := models.LoadedState{
			Entries: []models.Entry{
				models.NewEntry("a", "1", iosEN),
				models.NewEntry("b", "", iosEN),
			},
			Partition: iosEN,
		}
		err := v.Validate(ctx, s)
		require.ErrorIs(t, err, ErrEmptyValue)
		assert.Contains(t, err.Error(), "row 1")
	})

	t.Run("baseline value untrimmed", func(t *testing.T) {
		s := models.LoadedState{
			Entries:   []models.Entry{models.NewEntry("a", " 1", iosEN)},
			Partition: iosEN,
		}
		assert.ErrorIs(t, v.Validate(ctx, s), ErrUntrimmedInput)
	})

	t.Run("well-formed baseline", func(t *testing.T) {
		s := models.LoadedState{
			Entries:   []models.Entry{models.NewEntry("a", "1", iosEN), models.NewEntry("b", "2", iosEN)},
			Partition: iosEN,
		}
		assert.NoError(t, v.Validate(ctx, s))
	})
}
