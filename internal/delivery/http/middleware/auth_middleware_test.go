package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinica-dental-api/config"
	"clinica-dental-api/pkg/jwt"

	"github.com/google/uuid"
)

type memoryTokenStore map[string]bool

func (s memoryTokenStore) Save(_ context.Context, userID uuid.UUID, tokenID string, _ time.Duration) error {
	s[userID.String()+tokenID] = true
	return nil
}

func (s memoryTokenStore) Exists(_ context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	return s[userID.String()+tokenID], nil
}

func (s memoryTokenStore) Revoke(_ context.Context, userID uuid.UUID, tokenID string) error {
	delete(s, userID.String()+tokenID)
	return nil
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "middleware-secret", AccessExpiry: time.Minute})
	store := memoryTokenStore{}
	m := NewAuthMiddleware(jwtService, store)

	userID := uuid.New()
	token, tokenID, err := jwtService.GenerateAccessToken(userID, "staff@clinica.test")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	_ = store.Save(context.Background(), userID, tokenID, time.Minute)

	revokedToken, _, err := jwtService.GenerateAccessToken(userID, "staff@clinica.test")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	var seenUser uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUser, _ = GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := m.Authenticate(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid token", header: "Bearer " + token, wantStatus: http.StatusNoContent},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + token, wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized},
		{name: "revoked token", header: "Bearer " + revokedToken, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seenUser = uuid.Nil
			req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusNoContent && seenUser != userID {
				t.Fatalf("user in context = %s, want %s", seenUser, userID)
			}
		})
	}
}
