package uploads

import (
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slabworks/cardscan/internal/common"
)

func testSigner(now time.Time) *Signer {
	s := NewSigner(common.SignerConfig{
		BaseURL: "https://img.example.com/",
		Secret:  "test-secret",
		RefTTL:  10 * time.Minute,
	})
	s.now = func() time.Time { return now }
	return s
}

func TestSignedURLRoundTrip(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s := testSigner(now)

	signed, err := s.SignedURL("batches/b1/card front.jpg", 0)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(signed, "https://img.example.com/batches/b1/card%20front.jpg?"), signed)

	u, err := url.Parse(signed)
	require.NoError(t, err)
	expires, err := strconv.ParseInt(u.Query().Get("expires"), 10, 64)
	require.NoError(t, err)
	assert.Equal(t, now.Add(10*time.Minute).Unix(), expires)

	assert.NoError(t, s.Verify("batches/b1/card front.jpg", expires, u.Query().Get("sig")))
}

func TestSignedURLCustomTTL(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s := testSigner(now)

	signed, err := s.SignedURL("k.jpg", time.Hour)
	require.NoError(t, err)

	u, _ := url.Parse(signed)
	expires, _ := strconv.ParseInt(u.Query().Get("expires"), 10, 64)
	assert.Equal(t, now.Add(time.Hour).Unix(), expires)
}

func TestSignedURLEmptyKey(t *testing.T) {
	s := testSigner(time.Now())
	_, err := s.SignedURL("", 0)
	assert.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s := testSigner(now)

	signed, err := s.SignedURL("k.jpg", time.Minute)
	require.NoError(t, err)
	u, _ := url.Parse(signed)
	expires, _ := strconv.ParseInt(u.Query().Get("expires"), 10, 64)
	sig := u.Query().Get("sig")

	s.now = func() time.Time { return now.Add(2 * time.Minute) }
	assert.ErrorContains(t, s.Verify("k.jpg", expires, sig), "expired")
}

func TestVerifyRejectsTamperedKey(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s := testSigner(now)

	signed, err := s.SignedURL("k.jpg", time.Minute)
	require.NoError(t, err)
	u, _ := url.Parse(signed)
	expires, _ := strconv.ParseInt(u.Query().Get("expires"), 10, 64)
	sig := u.Query().Get("sig")

	assert.ErrorContains(t, s.Verify("other.jpg", expires, sig), "mismatch")
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	a := testSigner(now)
	b := NewSigner(common.SignerConfig{BaseURL: "https://img.example.com", Secret: "other", RefTTL: time.Minute})
	b.now = a.now

	signed, err := a.SignedURL("k.jpg", time.Minute)
	require.NoError(t, err)
	u, _ := url.Parse(signed)
	expires, _ := strconv.ParseInt(u.Query().Get("expires"), 10, 64)

	assert.Error(t, b.Verify("k.jpg", expires, u.Query().Get("sig")))
}
