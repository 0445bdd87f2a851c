package snowflake

import (
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/ssh"
)

// DefaultTokenLifetime is the lifetime of generated key-pair JWTs.
// Snowflake rejects tokens valid for more than an hour.
const DefaultTokenLifetime = 59 * time.Minute

// LoadPrivateKey reads an RSA private key from path. PKCS#8, PKCS#1, and
// OpenSSH formats are accepted; passphrase unlocks encrypted OpenSSH keys.
func LoadPrivateKey(path, passphrase string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read private key: %w", err)
	}

	var parsed any
	if passphrase != "" {
		parsed, err = ssh.ParseRawPrivateKeyWithPassphrase(data, []byte(passphrase))
	} else {
		parsed, err = ssh.ParseRawPrivateKey(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse private key %s: %w", path, err)
	}

	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key %s is %T, need RSA", path, parsed)
	}
	return key, nil
}

// PublicKeyFingerprint computes the SHA256 fingerprint of an RSA public key
// in the form Snowflake embeds in JWT issuers: "SHA256:<base64 digest>".
func PublicKeyFingerprint(pub *rsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", fmt.Errorf("encode public key: %w", err)
	}
	digest := sha256.Sum256(der)
	return "SHA256:" + base64.StdEncoding.EncodeToString(digest[:]), nil
}

// KeyPairToken signs an RS256 JWT for the account and user, suitable for
// Snowflake's SQL REST API. The issuer carries the qualified user name plus
// the public-key fingerprint; the subject is the qualified user name. A
// zero lifetime uses DefaultTokenLifetime.
func KeyPairToken(account, user string, key *rsa.PrivateKey, lifetime time.Duration) (string, error) {
	if lifetime == 0 {
		lifetime = DefaultTokenLifetime
	}

	fingerprint, err := PublicKeyFingerprint(&key.PublicKey)
	if err != nil {
		return "", err
	}

	qualified := strings.ToUpper(account) + "." + strings.ToUpper(user)
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    qualified + "." + fingerprint,
		Subject:   qualified,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(key)
}
