package shoptests

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/nirvanashop/shop-contract-tests/framework/ctest"
	"github.com/nirvanashop/shop-contract-tests/framework/harness"
	"github.com/nirvanashop/shop-contract-tests/framework/opt"
	"github.com/nirvanashop/shop-contract-tests/shopapi"
	"github.com/nirvanashop/shop-contract-tests/shoptests/expect"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const forgedIssuer = "https://clerk.forged.invalid"

type forgedClaims struct {
	jwt.RegisteredClaims
	Metadata map[string]string `json:"metadata"`
}

// newForgedToken returns a well-formed JWT that claims to be an admin session, signed with a
// random key that the backend cannot know.
func newForgedToken(now time.Time) (string, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("cannot generate signing key: %w", err)
	}
	claims := forgedClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    forgedIssuer,
			Subject:   "user_" + uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Metadata: map[string]string{"role": "admin"},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

func doForgedCredentialTests(t *ctest.T) {
	token, err := newForgedToken(time.Now())
	if err != nil {
		t.Errorf("cannot create forged token: %s", err)
		return
	}
	t.Debug("forged token: %s", token)

	forgedProbe := func(path string) ProbeSpec {
		return ProbeSpec{
			Method:      "GET",
			Path:        path,
			Body:        opt.None[interface{}](),
			Expect:      expect.Status.Is(401),
			PassMessage: rejectedForgedMessage,
			Options:     []harness.RequestOption{harness.WithBearerToken(token)},
		}
	}
	runProbe(t, "GET /api/cart (forged token)", forgedProbe(shopapi.PathCart))
	runProbe(t, "GET /api/admin/orders (forged token)", forgedProbe(shopapi.PathAdminOrders))
}
