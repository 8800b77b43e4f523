package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-strings-editor/internal/validators"
	"github.com/MKhiriev/go-strings-editor/models"
)

// ChangeSet is a batch of changes read from a YAML file:
//
//	partition: android/fr
//	message: Fix onboarding copy
//	insert:
//	  - key: onboarding.skip
//	    value: Passer
//	edit:
//	  - key: onboarding.title
//	    new_key: onboarding.heading
//	    value: Bienvenue
//
// Edits address rows by their current key. A missing partition means the
// partition the session is already on.
type ChangeSet struct {
	Partition models.Partition `yaml:"partition"`
	Message   string           `yaml:"message"`
	Insert    []InsertChange   `yaml:"insert"`
	Edit      []EditChange     `yaml:"edit"`
}

// InsertChange adds a new entry.
type InsertChange struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// EditChange renames the entry Key to NewKey and/or replaces its value.
// Nil fields are left as they are.
type EditChange struct {
	Key    string  `yaml:"key"`
	NewKey *string `yaml:"new_key"`
	Value  *string `yaml:"value"`
}

// LoadChangeSet reads a change set from the YAML file at path.
func LoadChangeSet(path string) (ChangeSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return ChangeSet{}, fmt.Errorf("open change set: %w", err)
	}
	defer f.Close()

	return ParseChangeSet(f)
}

// ParseChangeSet decodes a change set. Unknown fields are rejected.
func ParseChangeSet(r io.Reader) (ChangeSet, error) {
	var cs ChangeSet

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cs); err != nil {
		return ChangeSet{}, fmt.Errorf("decode change set: %w", err)
	}
	return cs, nil
}

// Len returns the number of changes.
func (c ChangeSet) Len() int {
	return len(c.Insert) + len(c.Edit)
}

// Validate checks the change set before any of it is replayed. Errors name
// the offending key where there is one.
func (c ChangeSet) Validate(ctx context.Context, v validators.Validator) error {
	if strings.TrimSpace(c.Message) == "" {
		return validators.ErrEmptyCommitMessage
	}
	if c.Len() == 0 {
		return validators.ErrEmptyChangeSet
	}

	if !c.Partition.IsZero() {
		if err := v.Validate(ctx, c.Partition); err != nil {
			return fmt.Errorf("partition: %w", err)
		}
	}

	for i, ins := range c.Insert {
		entry := models.NewEntry(strings.TrimSpace(ins.Key), strings.TrimSpace(ins.Value), c.Partition)
		if err := v.Validate(ctx, entry); err != nil {
			return fmt.Errorf("insert %d: %w", i, err)
		}
		if entry.Key == models.ImmutableKey {
			return fmt.Errorf("insert %d: %s: %w", i, entry.Key, validators.ErrImmutableKey)
		}
	}

	for i, ed := range c.Edit {
		key := strings.TrimSpace(ed.Key)
		if key == "" {
			return fmt.Errorf("edit %d: %w", i, validators.ErrEmptyKey)
		}
		if ed.NewKey == nil && ed.Value == nil {
			return fmt.Errorf("edit %d: %s: %w", i, key, ErrNoChange)
		}

		if ed.NewKey != nil {
			renamed := models.Entry{Key: strings.TrimSpace(*ed.NewKey)}
			if err := v.Validate(ctx, renamed, validators.FieldKey); err != nil {
				return fmt.Errorf("edit %d: %s: %w", i, key, err)
			}
		}
		if ed.Value != nil {
			changed := models.Entry{Key: key, Value: strings.TrimSpace(*ed.Value)}
			if err := v.Validate(ctx, changed, validators.FieldValue); err != nil {
				return fmt.Errorf("edit %d: %w", i, err)
			}
		}
	}

	return nil
}
