package translate

import "context"

// Noop is used when translation is disabled. It never finds a translation.
type Noop struct{}

// Translate always reports no result.
func (Noop) Translate(context.Context, string, string, string) (string, bool) {
	return "", false
}
