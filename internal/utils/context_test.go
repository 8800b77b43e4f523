package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestUsernameCtxKey(t *testing.T) {
	if UsernameCtxKey.String() != "username" {
		t.Errorf("expected 'username', got '%s'", UsernameCtxKey.String())
	}
}

func TestGetUsernameFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, "alice")

	username, ok := GetUsernameFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if username != "alice" {
		t.Errorf("expected username=alice, got %s", username)
	}
}

func TestGetUsernameFromContext_Missing(t *testing.T) {
	username, ok := GetUsernameFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if username != "" {
		t.Errorf("expected empty username, got %s", username)
	}
}

func TestGetUsernameFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, int64(42))

	if _, ok := GetUsernameFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetUsernameFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, "")

	if _, ok := GetUsernameFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty username, got true")
	}
}
