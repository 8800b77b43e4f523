package utils

import (
	"testing"
	"time"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", "alice", time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", token.Issuer)
	}
	if token.Subject != "alice" {
		t.Errorf("expected subject alice, got %s", token.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		username string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "alice", time.Hour, "key"},
		{"empty username", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "alice", 0, "key"},
		{"empty key", "iss", "alice", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.username, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "bob", 5*time.Minute, "secret-key")

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer")
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}

	username, err := parsed.GetUsername()
	if err != nil {
		t.Fatalf("expected username, got error: %v", err)
	}
	if username != "bob" {
		t.Errorf("expected username bob, got %s", username)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "bob", time.Hour, "correct-key")

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer"); err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "bob", -time.Second, "key")

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "test-issuer"); err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", "bob", time.Hour, "key")

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer"); err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	if _, err := ValidateAndParseJWTToken("not.a.token", "key", "iss"); err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc", "abc", false},
		{"surrounding spaces", "  Bearer abc  ", "abc", false},
		{"missing token", "Bearer", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error=%v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTokenExpired(t *testing.T) {
	valid, _ := GenerateJWTToken("iss", "alice", time.Hour, "key")
	expired, _ := GenerateJWTToken("iss", "alice", -time.Minute, "key")
	now := time.Now()

	if TokenExpired(valid.SignedString, now, 0) {
		t.Error("fresh token must not be expired")
	}
	if !TokenExpired(valid.SignedString, now, 2*time.Hour) {
		t.Error("token expiring within leeway must count as expired")
	}
	if !TokenExpired(expired.SignedString, now, 0) {
		t.Error("expired token must be reported as expired")
	}
	if !TokenExpired("garbage", now, 0) {
		t.Error("malformed token must be reported as expired")
	}
}
