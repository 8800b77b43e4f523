package remotetest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-strings-editor/internal/logger"
	"github.com/MKhiriev/go-strings-editor/models"
)

func TestLoadFixture(t *testing.T) {
	f, err := LoadFixture(strings.NewReader(`
users:
  alice: secret
partitions:
  - partition: android/fr
    message: initial import
    entries:
      - key: greeting
        value: Bonjour
      - key: farewell
        value: Au revoir
`))
	require.NoError(t, err)

	fr := models.Partition{Platform: models.PlatformAndroid, Language: "fr"}

	s := New("key", logger.Nop())
	s.Apply(f)

	assert.Equal(t, []models.Entry{
		models.NewEntry("greeting", "Bonjour", fr),
		models.NewEntry("farewell", "Au revoir", fr),
	}, s.Entries(fr))
	assert.Equal(t, "initial import", s.LastCommitMessage(fr))
	assert.Equal(t, "secret", s.users["alice"])
}

func TestLoadFixture_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown field", body: "groups: []\n"},
		{name: "missing partition", body: "partitions:\n  - message: m\n"},
		{name: "bad platform", body: "partitions:\n  - partition: windows\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFixture(strings.NewReader(tt.body))
			assert.Error(t, err)
		})
	}
}
