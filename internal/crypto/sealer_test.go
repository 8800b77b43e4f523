package crypto

import (
	"encoding/base64"
	"errors"
	"testing"
)

// newTestSealer keeps Argon2id cheap so the suite stays fast.
func newTestSealer(secret string) CredentialSealer {
	return &credentialSealer{
		secret:       []byte(secret),
		argonTime:    1,
		argonMemory:  8 * 1024,
		argonThreads: 1,
		argonKeyLen:  32,
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	s := newTestSealer("credentials-key")

	sealed, err := s.Seal("hunter2")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if sealed == "hunter2" {
		t.Fatal("sealed value must not equal the plaintext")
	}

	opened, err := s.Open(sealed)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if opened != "hunter2" {
		t.Fatalf("Open = %q, want %q", opened, "hunter2")
	}
}

func TestSeal_RandomizedPerCall(t *testing.T) {
	s := newTestSealer("credentials-key")

	a, err := s.Seal("same")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	b, err := s.Seal("same")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if a == b {
		t.Fatal("expected different blobs for repeated Seal calls")
	}
}

func TestOpen_WrongSecret(t *testing.T) {
	sealed, err := newTestSealer("right").Seal("hunter2")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	_, err = newTestSealer("wrong").Open(sealed)
	if !errors.Is(err, ErrSealedDataCorrupt) {
		t.Fatalf("Open error = %v, want ErrSealedDataCorrupt", err)
	}
}

func TestOpen_Malformed(t *testing.T) {
	s := newTestSealer("credentials-key")

	tests := map[string]string{
		"not base64":  "%%%",
		"too short":   base64.StdEncoding.EncodeToString([]byte("short")),
		"salt only":   base64.StdEncoding.EncodeToString(make([]byte, saltSize)),
		"bad payload": base64.StdEncoding.EncodeToString(make([]byte, saltSize+12+20)),
	}

	for name, blob := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Open(blob); !errors.Is(err, ErrSealedDataCorrupt) {
				t.Fatalf("Open error = %v, want ErrSealedDataCorrupt", err)
			}
		})
	}
}

func TestNewCredentialSealer_Defaults(t *testing.T) {
	s, ok := NewCredentialSealer("k").(*credentialSealer)
	if !ok {
		t.Fatal("expected *credentialSealer")
	}
	if s.argonMemory != 64*1024 || s.argonKeyLen != 32 {
		t.Fatalf("unexpected argon parameters: memory=%d keyLen=%d", s.argonMemory, s.argonKeyLen)
	}
}
