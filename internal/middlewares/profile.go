package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/nursingskill/backend/internal/models"
	"go.uber.org/zap"
)

// ProfileProvider returns the current user profile
type ProfileProvider interface {
	Current(ctx context.Context) (*models.UserProfile, error)
}

const profileKey contextKey = "profile"

// RequireProfile rejects requests with 401 until a profile has been entered.
// The profile is stored in the request context.
func RequireProfile(provider ProfileProvider, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			profile, err := provider.Current(r.Context())
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				if errors.Is(err, models.ErrProfileNotFound) {
					w.WriteHeader(http.StatusUnauthorized)
					w.Write([]byte(`{"error":"profile required"}`))
					return
				}

				logger.Error("failed to check profile",
					zap.String("request_id", GetRequestID(r.Context())),
					zap.Error(err))
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"internal server error"}`))
				return
			}

			ctx := context.WithValue(r.Context(), profileKey, profile)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetProfile retrieves the profile stored by RequireProfile
func GetProfile(ctx context.Context) *models.UserProfile {
	profile, _ := ctx.Value(profileKey).(*models.UserProfile)
	return profile
}
