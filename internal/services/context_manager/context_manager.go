package context_manager

import (
	"context"
)

type userIDKey struct{}
type firstNameKey struct{}

// SetUserContext stores the sender's telegram ID into context
func SetUserContext(ctx context.Context, telegramID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, telegramID)
}

// GetUserFromContext retrieves the sender's telegram ID from context
func GetUserFromContext(ctx context.Context) int64 {
	id, ok := ctx.Value(userIDKey{}).(int64)
	if !ok {
		return 0
	}
	return id
}

// SetFirstNameContext stores the sender's first name into context
func SetFirstNameContext(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, firstNameKey{}, name)
}

// GetFirstNameFromContext retrieves the sender's first name from context
func GetFirstNameFromContext(ctx context.Context) string {
	name, ok := ctx.Value(firstNameKey{}).(string)
	if !ok || name == "" {
		return "there"
	}
	return name
}
