package models

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// WireEntry is an entry as the remote transmits it. The partition is carried
// by the URL, not by each entry.
type WireEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// StringsResponse is the remote's answer to a fetch or a commit.
type StringsResponse struct {
	// Entries is the ordered baseline of the requested partition.
	Entries []WireEntry `json:"entries"`

	// CommitMessage is the message of the last commit touching the partition.
	CommitMessage string `json:"commit_message,omitempty"`

	// Revision identifies the remote state the entries were read from.
	Revision string `json:"revision,omitempty"`
}

// CommitRequest is the body of POST /api/strings/{platform}/commits.
type CommitRequest struct {
	// Insertions are new entries, newest first.
	Insertions []WireEntry `json:"insertions"`

	// Edits maps an original key to its replacement.
	Edits map[string]WireEntry `json:"edits"`

	// Message is the commit message.
	Message string `json:"message"`

	// Length is the number of changes; the remote rejects mismatches.
	Length int `json:"length"`
}

// ToWire strips the partition from e.
func (e Entry) ToWire() WireEntry {
	return WireEntry{Key: e.Key, Value: e.Value}
}

// ToEntries tags every wire entry of r with partition.
func (r StringsResponse) ToEntries(partition Partition) []Entry {
	entries := make([]Entry, 0, len(r.Entries))
	for _, w := range r.Entries {
		entries = append(entries, NewEntry(w.Key, w.Value, partition))
	}
	return entries
}

// NewCommitRequest converts a payload to its wire form.
func NewCommitRequest(p CommitPayload) CommitRequest {
	insertions := make([]WireEntry, 0, len(p.insertions))
	for _, e := range p.insertions {
		insertions = append(insertions, e.ToWire())
	}

	edits := make(map[string]WireEntry, len(p.edits))
	for k, e := range p.edits {
		edits[k] = e.ToWire()
	}

	return CommitRequest{
		Insertions: insertions,
		Edits:      edits,
		Message:    p.message,
		Length:     p.Len(),
	}
}
