package rolefilter

import "context"

type ctxKey struct{}

// WithFilter returns a copy of ctx that carries f.
func WithFilter(ctx context.Context, f *Filter) context.Context {
	return context.WithValue(ctx, ctxKey{}, f)
}

// FromContext returns the Filter carried by ctx, if any.
func FromContext(ctx context.Context) (*Filter, bool) {
	f, ok := ctx.Value(ctxKey{}).(*Filter)
	return f, ok && f != nil
}

// MustFromContext returns the Filter carried by ctx and panics when there is none.
func MustFromContext(ctx context.Context) *Filter {
	f, ok := FromContext(ctx)
	if !ok {
		panic("rolefilter: no role filter in context; wrap the call in a role scope")
	}
	return f
}
