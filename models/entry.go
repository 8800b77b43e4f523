package models

// ImmutableKey is the reserved key carrying the strings version. Its row can
// never be edited and no other row may be renamed to it.
const ImmutableKey = "content_version"

// Entry is a single localized string. Entries are plain values: two entries
// are equal when key, value and partition are equal.
type Entry struct {
	// Key identifies the string inside its partition.
	Key string `json:"key" yaml:"key"`

	// Value is the display text.
	Value string `json:"value" yaml:"value"`

	// Partition is the platform/language the entry belongs to.
	Partition Partition `json:"partition,omitzero" yaml:"partition,omitempty"`
}

// NewEntry returns an Entry tagged with partition.
func NewEntry(key, value string, partition Partition) Entry {
	return Entry{Key: key, Value: value, Partition: partition}
}
