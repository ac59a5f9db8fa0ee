package web

import (
	"context"
	"net/http"

	"github.com/chris-tela/nuzlocke-tracker-sub000/internal/core"
)

// WithRequestMetadata adds client IP and User-Agent to the context so the
// service layer can include them in its logs.
func WithRequestMetadata(ctx context.Context, r *http.Request) context.Context {
	ip := r.RemoteAddr // already resolved by TrustedRealIP
	ua := r.Header.Get("User-Agent")
	ctx = core.ContextWithClientIP(ctx, ip)
	ctx = core.ContextWithUserAgent(ctx, ua)
	return ctx
}
