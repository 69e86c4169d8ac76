package middlewares

import (
	"context"
	"medxbay-service/internal/app/config"
	"medxbay-service/internal/app/models"
	"medxbay-service/internal/pkg/constvars"
	"medxbay-service/internal/pkg/exceptions"
	"medxbay-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSessionService struct {
	sessionData string
	err         error
}

func (f *fakeSessionService) CreateSession(ctx context.Context, session *models.Session) (string, error) {
	return "", nil
}

func (f *fakeSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.sessionData, nil
}

func (f *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	return nil, nil
}

func (f *fakeSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return nil
}

func TestAuthenticate(t *testing.T) {
	secret := "test-jwt-secret"
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: secret},
	}

	sessionJSON := `{"session_id":"sess-1","user_id":"user-1","role":"patient"}`

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
		assert.True(t, ok, "session data should be set in context")
		assert.Equal(t, sessionJSON, sessionData)

		w.WriteHeader(http.StatusOK)
	})

	t.Run("Valid Token", func(t *testing.T) {
		m := NewMiddlewares(zap.NewNop(), &fakeSessionService{sessionData: sessionJSON}, internalConfig)

		token, err := utils.GenerateJWT("sess-1", secret, time.Hour)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/bookings", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		m.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing Authorization Header", func(t *testing.T) {
		m := NewMiddlewares(zap.NewNop(), &fakeSessionService{sessionData: sessionJSON}, internalConfig)

		req := httptest.NewRequest("GET", "/api/v1/bookings", nil)
		rr := httptest.NewRecorder()
		m.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Invalid Token", func(t *testing.T) {
		m := NewMiddlewares(zap.NewNop(), &fakeSessionService{sessionData: sessionJSON}, internalConfig)

		req := httptest.NewRequest("GET", "/api/v1/bookings", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-token")

		rr := httptest.NewRecorder()
		m.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Expired Session", func(t *testing.T) {
		m := NewMiddlewares(zap.NewNop(), &fakeSessionService{err: exceptions.ErrTokenInvalidOrExpired(nil)}, internalConfig)

		token, err := utils.GenerateJWT("sess-1", secret, time.Hour)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/bookings", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		m.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAuthenticateOptional(t *testing.T) {
	secret := "test-jwt-secret"
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: secret},
	}

	sessionJSON := `{"session_id":"sess-1","user_id":"user-1","role":"admin"}`

	handlerSeenSession := func(captured *string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			sessionData, _ := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
			*captured = sessionData
			w.WriteHeader(http.StatusOK)
		}
	}

	t.Run("Valid Token Injects Session", func(t *testing.T) {
		m := NewMiddlewares(zap.NewNop(), &fakeSessionService{sessionData: sessionJSON}, internalConfig)

		token, err := utils.GenerateJWT("sess-1", secret, time.Hour)
		assert.NoError(t, err)

		var captured string
		req := httptest.NewRequest("GET", "/api/v1/doctors/doc-1", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		m.AuthenticateOptional(handlerSeenSession(&captured)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, sessionJSON, captured)
	})

	t.Run("Anonymous Request Passes Through", func(t *testing.T) {
		m := NewMiddlewares(zap.NewNop(), &fakeSessionService{sessionData: sessionJSON}, internalConfig)

		var captured string
		req := httptest.NewRequest("GET", "/api/v1/doctors/doc-1", nil)

		rr := httptest.NewRecorder()
		m.AuthenticateOptional(handlerSeenSession(&captured)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, captured)
	})

	t.Run("Invalid Token Treated As Anonymous", func(t *testing.T) {
		m := NewMiddlewares(zap.NewNop(), &fakeSessionService{sessionData: sessionJSON}, internalConfig)

		var captured string
		req := httptest.NewRequest("GET", "/api/v1/doctors/doc-1", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-token")

		rr := httptest.NewRecorder()
		m.AuthenticateOptional(handlerSeenSession(&captured)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, captured)
	})
}
