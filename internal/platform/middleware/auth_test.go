package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carelink/internal/jwttoken"
	"carelink/pkg/requestcontext"
)

// jwtAdapter bridges the token service to the middleware contract the same
// way main does.
type jwtAdapter struct {
	svc *jwttoken.JWTService
}

func (a jwtAdapter) ValidateToken(token string) (*JWTClaims, error) {
	claims, err := a.svc.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	return &JWTClaims{UserID: claims.UserID, OrganizationID: claims.OrganizationID}, nil
}

func TestRequireAuth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := jwttoken.NewJWTService("test-signing-key", "carelink", "carelink-api")
	userID := uuid.New()
	orgID := uuid.New()

	var gotUser, gotOrg string
	handler := RequireAuth(jwtAdapter{tokens}, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = requestcontext.UserID(r.Context()).String()
		gotOrg = requestcontext.OrganizationID(r.Context()).String()
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid token reaches the handler with the actor set", func(t *testing.T) {
		token, err := tokens.GenerateAccessToken(userID, orgID, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID.String(), gotUser)
		assert.Equal(t, orgID.String(), gotOrg)
	})

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "unauthorized")
	})

	t.Run("malformed scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic abc123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := tokens.GenerateAccessToken(userID, orgID, -time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid or expired token")
	})

	t.Run("token signed with another key", func(t *testing.T) {
		other := jwttoken.NewJWTService("other-key", "carelink", "carelink-api")
		token, err := other.GenerateAccessToken(userID, orgID, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequestMeta(t *testing.T) {
	var gotID string
	var gotTime time.Time
	handler := RequestMeta(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = requestcontext.RequestID(r.Context())
		gotTime = requestcontext.Now(r.Context())
	}))

	t.Run("generates an id when absent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, gotID)
		_, err := uuid.Parse(gotID)
		assert.NoError(t, err)
		assert.Equal(t, gotID, rec.Header().Get("X-Request-ID"))
		assert.False(t, gotTime.IsZero())
	})

	t.Run("honors an inbound id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "req-42")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "req-42", gotID)
		assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
	})
}
