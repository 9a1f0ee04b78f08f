package scope

import (
	"context"

	"cryptobuzz-srv/internal/model"
)

type ctxKey struct{}

// SetScopeToContext stores the caller identity resolved by the scope middleware.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, ctxKey{}, sc)
}

// GetScopeFromContext returns false when no identity was stored or the stored one is empty.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(ctxKey{}).(model.Scope)
	if !ok || sc.IsZero() {
		return model.Scope{}, false
	}
	return sc, true
}
