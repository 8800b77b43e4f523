package remotetest

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-strings-editor/models"
)

// Fixture describes the initial contents of a remote:
//
//	users:
//	  alice: secret
//	partitions:
//	  - partition: ios/en
//	    message: initial import
//	    entries:
//	      - key: greeting
//	        value: Hello
type Fixture struct {
	Users      map[string]string  `yaml:"users"`
	Partitions []FixturePartition `yaml:"partitions"`
}

// FixturePartition is the seeded state of one partition.
type FixturePartition struct {
	Partition models.Partition   `yaml:"partition"`
	Message   string             `yaml:"message"`
	Entries   []models.WireEntry `yaml:"entries"`
}

// LoadFixture decodes a YAML fixture. Unknown fields are rejected.
func LoadFixture(r io.Reader) (Fixture, error) {
	var f Fixture

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return Fixture{}, fmt.Errorf("decode fixture: %w", err)
	}

	for i, p := range f.Partitions {
		if p.Partition.IsZero() {
			return Fixture{}, fmt.Errorf("partition %d: %w", i, models.ErrInvalidPartition)
		}
	}
	return f, nil
}

// Apply registers the users and seeds the partitions of f.
func (s *Server) Apply(f Fixture) {
	for username, password := range f.Users {
		s.AddUser(username, password)
	}

	for _, p := range f.Partitions {
		entries := make([]models.Entry, 0, len(p.Entries))
		for _, e := range p.Entries {
			entries = append(entries, models.NewEntry(e.Key, e.Value, p.Partition))
		}
		s.Seed(p.Partition, entries, p.Message)
	}

	s.logger.Info().Int("users", len(f.Users)).Int("partitions", len(f.Partitions)).Msg("fixture applied")
}
