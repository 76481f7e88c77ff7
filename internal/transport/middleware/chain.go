package middleware

import (
	"log/slog"
	"net/http"

	"github.com/willyuhot/ehexam/internal/config"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines multiple middleware into a single Middleware.
// Middleware are applied in the order given: Chain(mw1, mw2)(handler)
// results in mw1(mw2(handler)), so mw1 executes first (outermost).
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// Stack is the middleware every API request passes through, outermost first:
// request id, access log, panic recovery, CORS and the body size cap.
func Stack(logger *slog.Logger, cors config.CORSConfig, maxBodyBytes int64) Middleware {
	return Chain(
		RequestID(),
		Logger(logger),
		Recovery(logger),
		CORS(cors),
		BodyLimit(maxBodyBytes),
	)
}
