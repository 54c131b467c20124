// Package opid tags each load, diff or merge operation with an id carried in
// its context. Nested operations remember the id of the operation that
// started them.
package opid

import (
	"context"

	"github.com/google/uuid"
)

type key struct{}

type ids struct {
	id     string
	parent string
}

// NewContext returns a copy of parent carrying a fresh operation id. If parent
// already carries an id it becomes the parent id of the new operation.
func NewContext(parent context.Context) (context.Context, string) {
	id := uuid.NewString()
	prev, _ := FromContext(parent)
	return context.WithValue(parent, key{}, ids{id: id, parent: prev}), id
}

// FromContext extracts the operation id from ctx.
func FromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(key{}).(ids)
	return v.id, ok
}

// ParentFromContext returns the id of the enclosing operation, if any.
func ParentFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(key{}).(ids)
	if !ok || v.parent == "" {
		return "", false
	}
	return v.parent, true
}
