package auth

import (
	"context"
	"slices"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// RoleAdministrator may read the audit log.
const RoleAdministrator = "Administrator"

type Claims struct {
	Subject string
	Roles   []string
}

func (c Claims) HasRole(role string) bool {
	return slices.Contains(c.Roles, role)
}

func WithClaims(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func FromContext(ctx context.Context) Claims {
	if v, ok := ctx.Value(claimsKey).(Claims); ok {
		return v
	}
	return Claims{}
}

// Subject returns the authenticated subject, or nil when the request is anonymous.
func Subject(ctx context.Context) *string {
	s := FromContext(ctx).Subject
	if s == "" {
		return nil
	}
	return &s
}
