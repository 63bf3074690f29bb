package ctxutil

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNoRequestData is returned when a handler runs outside the auth
// middleware.
var ErrNoRequestData = errors.New("no request data in context")

type requestDataKey struct{}

// RequestData is the per-request session context attached by the auth
// middleware: the authenticated user and the session the swipe cursor and
// chat history hang off.
type RequestData struct {
	UserID    int
	SessionID uuid.UUID
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, rd)
}

func GetRequestData(ctx context.Context) (*RequestData, error) {
	rd, ok := ctx.Value(requestDataKey{}).(*RequestData)
	if !ok || rd == nil {
		return nil, ErrNoRequestData
	}
	return rd, nil
}

type traceDataKey struct{}

type TraceData struct {
	RequestID string
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceDataKey{}, td)
}

func GetTraceData(ctx context.Context) *TraceData {
	if td, ok := ctx.Value(traceDataKey{}).(*TraceData); ok {
		return td
	}
	return nil
}
