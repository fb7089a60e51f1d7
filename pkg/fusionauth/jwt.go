package fusionauth

import (
	"crypto"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// KeySet holds JWT signing public keys by key id, typically built from a
// JWTClient.GetPublicKeys response. It supports RS256 and ES256, the
// asymmetric algorithms FusionAuth signs with.
type KeySet struct {
	keys map[string]crypto.PublicKey
}

// NewKeySet parses a map of kid to PEM-encoded public key.
func NewKeySet(pemByKid map[string]string) (*KeySet, error) {
	keys := make(map[string]crypto.PublicKey, len(pemByKid))

	for kid, pemKey := range pemByKid {
		parsed, err := parsePublicKey(pemKey)
		if err != nil {
			return nil, fmt.Errorf("parsing public key %q: %w", kid, err)
		}

		keys[kid] = parsed
	}

	return &KeySet{keys: keys}, nil
}

func parsePublicKey(pemKey string) (crypto.PublicKey, error) {
	rsaKey, rsaErr := jwt.ParseRSAPublicKeyFromPEM([]byte(pemKey))
	if rsaErr == nil {
		return rsaKey, nil
	}

	ecKey, ecErr := jwt.ParseECPublicKeyFromPEM([]byte(pemKey))
	if ecErr == nil {
		return ecKey, nil
	}

	return nil, fmt.Errorf("not an RSA or ECDSA public key: %w", rsaErr)
}

// Get returns the public key for a kid.
func (k *KeySet) Get(kid string) (crypto.PublicKey, error) {
	key, ok := k.keys[kid]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKeyID, kid)
	}

	return key, nil
}

// Verify validates the signature of an encoded JWT against the key named by
// its kid header and returns the decoded claims. Signature verification
// happens locally; no network call is made.
func (k *KeySet) Verify(encodedJWT string) (jwt.MapClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{
		jwt.SigningMethodRS256.Alg(),
		jwt.SigningMethodES256.Alg(),
	}))

	token, err := parser.Parse(encodedJWT, func(t *jwt.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, ErrMissingKeyID
		}

		return k.Get(kid)
	})
	if err != nil {
		return nil, fmt.Errorf("verifying JWT: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}
