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

package signature

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nuts-foundation/doc-signer/pkg/crypto"
)

// TimestampLayout is the layout used for the timestamp field of the canonical payload
const TimestampLayout = time.RFC3339

// Payload holds the fields bound by a document signature. The canonical form is the JSON
// serialization in declaration order: documentHash, sessionToken, timestamp, signer.
// Signing and verification must both derive the payload through Canonical, any other
// serialization of the same logical values would break verification.
type Payload struct {
	DocumentHash string `json:"documentHash"`
	SessionToken string `json:"sessionToken"`
	Timestamp    string `json:"timestamp"`
	Signer       string `json:"signer"`
}

// Canonical returns the deterministic byte sequence that gets hashed and signed.
func (p Payload) Canonical() []byte {
	// a flat struct of strings cannot fail to marshal
	data, _ := json.Marshal(p)
	return data
}

// Engine signs and verifies canonical payloads with the process key material
type Engine struct {
	keys *crypto.KeyMaterial
}

// NewEngine returns an Engine backed by the given key material
func NewEngine(keys *crypto.KeyMaterial) *Engine {
	return &Engine{keys: keys}
}

// SignPayload signs the SHA-256 digest of the canonical payload and returns the signature in base64
func (e *Engine) SignPayload(payload Payload) (string, error) {
	signature, err := e.keys.Sign(payload.Canonical())
	if err != nil {
		return "", fmt.Errorf("could not sign payload: %w", err)
	}
	return base64.StdEncoding.EncodeToString(signature), nil
}

// VerifyPayload checks the base64 encoded signature against the canonical payload.
// A mismatching signature yields false without an error, an error is only returned
// when the signature encoding cannot be decoded at all.
func (e *Engine) VerifyPayload(payload Payload, signature string) (bool, error) {
	raw, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false, fmt.Errorf("could not decode signature: %w", err)
	}
	return e.keys.Verify(payload.Canonical(), raw), nil
}

// HashDocument returns the SHA-256 digest of the document content in hex.
// The hash binds a document to its signature independent of the signature mechanism.
func HashDocument(document []byte) string {
	digest := sha256.Sum256(document)
	return hex.EncodeToString(digest[:])
}
