package auth

import (
	"testing"
	"time"

	"fintrack/internal/testutil"
)

func TestIssueAndVerify(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		issuer := NewTokenIssuer("test-secret", time.Hour)

		token, err := issuer.Issue(42)
		testutil.AssertNoError(t, err)

		userID, err := issuer.Verify(token)
		testutil.AssertNoError(t, err)
		if userID != 42 {
			t.Errorf("expected user id 42, got %d", userID)
		}
	})

	t.Run("expired", func(t *testing.T) {
		issuer := NewTokenIssuer("test-secret", time.Hour)
		expired := &TokenIssuer{secret: issuer.secret, ttl: -time.Minute}

		token, err := expired.Issue(42)
		testutil.AssertNoError(t, err)

		_, err = issuer.Verify(token)
		testutil.AssertAppError(t, err, "INVALID_TOKEN")
	})

	t.Run("wrong_secret", func(t *testing.T) {
		issuer := NewTokenIssuer("test-secret", time.Hour)
		other := NewTokenIssuer("other-secret", time.Hour)

		token, err := other.Issue(42)
		testutil.AssertNoError(t, err)

		_, err = issuer.Verify(token)
		testutil.AssertAppError(t, err, "INVALID_TOKEN")
	})

	t.Run("malformed", func(t *testing.T) {
		issuer := NewTokenIssuer("test-secret", time.Hour)

		_, err := issuer.Verify("not.a.token")
		testutil.AssertAppError(t, err, "INVALID_TOKEN")
	})

	t.Run("failure_modes_indistinguishable", func(t *testing.T) {
		issuer := NewTokenIssuer("test-secret", time.Hour)
		expired := &TokenIssuer{secret: issuer.secret, ttl: -time.Minute}
		other := NewTokenIssuer("other-secret", time.Hour)

		expiredToken, _ := expired.Issue(1)
		foreignToken, _ := other.Issue(1)

		for _, token := range []string{expiredToken, foreignToken, "garbage"} {
			_, err := issuer.Verify(token)
			testutil.AssertAppError(t, err, "INVALID_TOKEN")
		}
	})

	t.Run("zero_ttl_defaults_to_an_hour", func(t *testing.T) {
		issuer := NewTokenIssuer("test-secret", 0)
		if issuer.ttl != DefaultTokenTTL {
			t.Errorf("expected default ttl %v, got %v", DefaultTokenTTL, issuer.ttl)
		}
	})
}
