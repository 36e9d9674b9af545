package logging

import "context"

type requestIDKey struct{}

// RequestIDAttr is the attribute under which the request id is logged.
const RequestIDAttr = "request_id"

// WithRequestID returns a copy of ctx carrying id. Every record logged with
// that context gets a request_id attribute.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// contextArgs appends the request-scoped attributes of ctx to args.
func contextArgs(ctx context.Context, args []any) []any {
	id := RequestID(ctx)
	if id == "" {
		return args
	}
	out := make([]any, 0, len(args)+2)
	out = append(out, args...)
	return append(out, RequestIDAttr, id)
}
