package context_manager

import (
	"context"
	"testing"
)

func TestSetUserContext(t *testing.T) {
	ctx := context.Background()
	ctx = SetUserContext(ctx, 42)

	id := GetUserFromContext(ctx)
	if id != 42 {
		t.Errorf("expected telegram ID 42, got %d", id)
	}
}

func TestGetUserFromContext_Empty(t *testing.T) {
	ctx := context.Background()

	id := GetUserFromContext(ctx)
	if id != 0 {
		t.Errorf("expected zero ID from fresh context, got %d", id)
	}
}

func TestSetUserContext_Overwrite(t *testing.T) {
	ctx := context.Background()
	ctx = SetUserContext(ctx, 1)
	ctx = SetUserContext(ctx, 2)

	id := GetUserFromContext(ctx)
	if id != 2 {
		t.Errorf("expected telegram ID 2, got %d", id)
	}
}

func TestSetFirstNameContext(t *testing.T) {
	ctx := context.Background()
	ctx = SetFirstNameContext(ctx, "Alex")

	name := GetFirstNameFromContext(ctx)
	if name != "Alex" {
		t.Errorf("expected first name 'Alex', got %q", name)
	}
}

func TestGetFirstNameFromContext_Fallback(t *testing.T) {
	ctx := context.Background()

	name := GetFirstNameFromContext(ctx)
	if name != "there" {
		t.Errorf("expected fallback greeting name, got %q", name)
	}
}
