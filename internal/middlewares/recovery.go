package middlewares

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RecoveryMiddleware recovers from panics in a flow handler.
// The panic is logged with the matched route and skill so the broken flow can be found;
// the process and every other flow keep running.
func RecoveryMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				err := recover()
				if err == nil {
					return
				}
				// net/http uses this panic to abort a response on purpose
				if err == http.ErrAbortHandler {
					panic(err)
				}

				fields := []zap.Field{
					zap.String("request_id", GetRequestID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
				}
				if rctx := chi.RouteContext(r.Context()); rctx != nil {
					fields = append(fields, zap.String("route", rctx.RoutePattern()))
					if skillID := rctx.URLParam("skillId"); skillID != "" {
						fields = append(fields, zap.String("skill_id", skillID))
					}
				}
				fields = append(fields, zap.Any("error", err), zap.Stack("stack"))
				logger.Error("panic recovered", fields...)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"internal server error"}`))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
