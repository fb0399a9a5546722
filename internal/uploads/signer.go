package uploads

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/slabworks/cardscan/internal/common"
)

// Signer mints time-bounded signed URLs for stored images. The serving
// gateway verifies the same HMAC before streaming the object, so a leaked
// URL goes stale after the TTL instead of being a permanent credential.
type Signer struct {
	baseURL string
	secret  []byte
	ttl     time.Duration
	now     func() time.Time
}

func NewSigner(cfg common.SignerConfig) *Signer {
	return &Signer{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		secret:  []byte(cfg.Secret),
		ttl:     cfg.RefTTL,
		now:     time.Now,
	}
}

// SignedURL returns a fetchable URL for the storage key, valid for ttl
// (or the configured default when ttl <= 0).
func (s *Signer) SignedURL(storageKey string, ttl time.Duration) (string, error) {
	if storageKey == "" {
		return "", fmt.Errorf("empty storage key")
	}
	if ttl <= 0 {
		ttl = s.ttl
	}
	expires := s.now().Add(ttl).Unix()
	sig := s.sign(storageKey, expires)

	q := url.Values{}
	q.Set("expires", strconv.FormatInt(expires, 10))
	q.Set("sig", sig)
	return fmt.Sprintf("%s/%s?%s", s.baseURL, pathEscapeKey(storageKey), q.Encode()), nil
}

// Verify checks a signature produced by SignedURL.
func (s *Signer) Verify(storageKey string, expires int64, sig string) error {
	if s.now().Unix() > expires {
		return fmt.Errorf("signed url expired")
	}
	want := s.sign(storageKey, expires)
	if !hmac.Equal([]byte(want), []byte(sig)) {
		return fmt.Errorf("signature mismatch")
	}
	return nil
}

func (s *Signer) sign(storageKey string, expires int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s\n%d", storageKey, expires)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// pathEscapeKey escapes each path segment, keeping the separators readable.
func pathEscapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
