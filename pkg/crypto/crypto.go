/*
 * Nuts doc-signer
 * Copyright (C) 2020. Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package crypto

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

// MinKeySize is the smallest RSA key size accepted for signing keys
const MinKeySize = 2048

// SignatureAlgorithm identifies the algorithm used for document signatures
const SignatureAlgorithm = "RSA-SHA256"

// KeyMaterial holds the asymmetric key pair used for signing and verification.
// The pair is generated once and lives for the duration of the process, it is never persisted or rotated.
type KeyMaterial struct {
	key *rsa.PrivateKey
}

// New generates a fresh key pair of the given size.
func New(keySize int) (*KeyMaterial, error) {
	if keySize < MinKeySize {
		return nil, fmt.Errorf("key size %d is below the minimum of %d bits", keySize, MinKeySize)
	}
	key, err := rsa.GenerateKey(rand.Reader, keySize)
	if err != nil {
		return nil, errors.Wrap(err, "could not generate signing key pair")
	}
	return &KeyMaterial{key: key}, nil
}

// Sign signs the SHA-256 digest of data with the private key using PKCS#1 v1.5.
func (k *KeyMaterial) Sign(data []byte) ([]byte, error) {
	hashed := sha256.Sum256(data)
	signature, err := rsa.SignPKCS1v15(rand.Reader, k.key, crypto.SHA256, hashed[:])
	if err != nil {
		return nil, errors.Wrap(err, "could not sign digest")
	}
	return signature, nil
}

// Verify checks signature against the SHA-256 digest of data using the public key.
func (k *KeyMaterial) Verify(data []byte, signature []byte) bool {
	hashed := sha256.Sum256(data)
	return rsa.VerifyPKCS1v15(&k.key.PublicKey, crypto.SHA256, hashed[:], signature) == nil
}

// SignJWT builds a JWT with the given claims, signed with RS256 and the process key.
func (k *KeyMaterial) SignJWT(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(k.key)
}

// PublicKey returns the public half of the key pair.
func (k *KeyMaterial) PublicKey() *rsa.PublicKey {
	return &k.key.PublicKey
}

// PublicKeyPEM exports the public key in PKIX PEM encoding so third parties can verify signatures on their own.
func (k *KeyMaterial) PublicKeyPEM() (string, error) {
	der, err := x509.MarshalPKIXPublicKey(&k.key.PublicKey)
	if err != nil {
		return "", errors.Wrap(err, "could not encode public key")
	}
	block := &pem.Block{Type: "PUBLIC KEY", Bytes: der}
	return string(pem.EncodeToMemory(block)), nil
}

// KeySize returns the size of the key pair in bits.
func (k *KeyMaterial) KeySize() int {
	return k.key.N.BitLen()
}
