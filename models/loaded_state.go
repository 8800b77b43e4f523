package models

// LoadedState is what the sync collaborator returns from every successful
// load, partition change or push: a full replacement baseline.
type LoadedState struct {
	// Entries is the ordered baseline of the partition.
	Entries []Entry

	// CommitMessage is the message of the last remote commit, empty when the
	// remote did not report one.
	CommitMessage string

	// Partition is the partition the entries belong to.
	Partition Partition
}

// HasCommitMessage reports whether the remote reported a last commit message.
func (s LoadedState) HasCommitMessage() bool {
	return s.CommitMessage != ""
}
