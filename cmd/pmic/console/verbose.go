package console

import "context"

type ctxIndex int

const ctxIndexVerbose ctxIndex = iota

// SetVerbose marks the context so bus adapters dump raw transaction
// traffic (HID reports, register exchanges) while handling a command.
func SetVerbose(parent context.Context, value bool) context.Context {
	return context.WithValue(parent, ctxIndexVerbose, value)
}

func IsVerbose(ctx context.Context) bool {
	val := ctx.Value(ctxIndexVerbose)
	if val == nil {
		return false
	}
	return val.(bool)
}
