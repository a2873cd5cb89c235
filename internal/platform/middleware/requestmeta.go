package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"carelink/pkg/requestcontext"
)

const requestIDHeader = "X-Request-ID"

// RequestMeta assigns every request an ID (honoring an inbound X-Request-ID)
// and pins the request time so all downstream timestamps within one call
// agree.
func RequestMeta(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		ctx = requestcontext.WithTime(ctx, requestcontext.Now(ctx))

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
