package context

import "context"

type contextKey string

const (
	requestIDKey  contextKey = "observability_request_id"
	functionKey   contextKey = "observability_function"
	deliveryIDKey contextKey = "observability_delivery_id"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(requestIDKey).(string)
	return value
}

// WithFunction records the endpoint function serving the request.
func WithFunction(ctx context.Context, name string) context.Context {
	if ctx == nil || name == "" {
		return ctx
	}
	return context.WithValue(ctx, functionKey, name)
}

func FunctionFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(functionKey).(string)
	return value
}

// WithDeliveryID records the id assigned to an inbound webhook delivery.
func WithDeliveryID(ctx context.Context, id string) context.Context {
	if ctx == nil || id == "" {
		return ctx
	}
	return context.WithValue(ctx, deliveryIDKey, id)
}

func DeliveryIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(deliveryIDKey).(string)
	return value
}
