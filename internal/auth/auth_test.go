package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	s := NewSigner("s3cret", time.Hour)
	tok, err := s.Sign("admin@example.com", []string{RoleAdministrator})
	require.NoError(t, err)

	c, err := s.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", c.Subject)
	assert.True(t, c.HasRole(RoleAdministrator))
	assert.False(t, c.HasRole("Operator"))

	_, err = NewSigner("other", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredToken(t *testing.T) {
	s := NewSigner("s3cret", time.Minute)
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, err := s.Sign("a", nil)
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDisabledSigner(t *testing.T) {
	s := NewSigner("", 0)
	assert.False(t, s.Enabled())
	assert.Equal(t, 24*time.Hour, s.TTL())
	_, err := s.Sign("a", nil)
	assert.Error(t, err)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NoError(t, CheckPassword(hash, "hunter2"))
	assert.ErrorIs(t, CheckPassword(hash, "hunter3"), ErrBadPassword)
}

func TestSubject(t *testing.T) {
	assert.Nil(t, Subject(context.Background()))
	ctx := WithClaims(context.Background(), Claims{Subject: "x"})
	require.NotNil(t, Subject(ctx))
	assert.Equal(t, "x", *Subject(ctx))
}

func TestMiddleware(t *testing.T) {
	s := NewSigner("s3cret", time.Hour)
	admin, _ := s.Sign("root", []string{RoleAdministrator})
	plain, _ := s.Sign("guest", nil)

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(FromContext(r.Context()).Subject))
	})
	protected := JWTAuth(s)(RequireRole(RoleAdministrator)(ok))

	cases := []struct {
		name   string
		header string
		code   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"garbage", "Bearer abc", http.StatusUnauthorized},
		{"no role", "Bearer " + plain, http.StatusForbidden},
		{"admin", "Bearer " + admin, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)
			assert.Equal(t, tc.code, rec.Code)
		})
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+plain)
	OptionalJWT(s)(ok).ServeHTTP(rec, req)
	assert.Equal(t, "guest", rec.Body.String())

	rec = httptest.NewRecorder()
	OptionalJWT(s)(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
