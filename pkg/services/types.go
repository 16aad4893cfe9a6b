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

package services

import (
	"errors"
	"fmt"
	"time"
)

const (
	// StatusPending indicates a session is waiting for the wallet to disclose attributes
	StatusPending SessionStatus = "pending"
	// StatusCompleted indicates the attributes for a session have been disclosed
	StatusCompleted SessionStatus = "completed"
)

// SessionStatus describes the state of a disclosure session. The only transition is pending to completed.
type SessionStatus string

// Well known credential attribute names. A CredentialMap may carry any additional attributes,
// they are treated as opaque strings.
const (
	GivenNameAttr      = "given_name"
	FamilyNameAttr     = "family_name"
	BirthDateAttr      = "birth_date"
	DocumentNumberAttr = "document_number"
	NationalityAttr    = "nationality"
)

// CredentialMap holds the attributes disclosed during a session, keyed by attribute name.
type CredentialMap map[string]string

// Copy returns a detached copy of the credential map, so stored records cannot be altered through shared references.
func (c CredentialMap) Copy() CredentialMap {
	if c == nil {
		return nil
	}
	copied := make(CredentialMap, len(c))
	for key, value := range c {
		copied[key] = value
	}
	return copied
}

// SignerName derives the display name of the signer from the given and family name attributes.
// Missing attributes default to the empty string.
func (c CredentialMap) SignerName() string {
	return fmt.Sprintf("%s %s", c[GivenNameAttr], c[FamilyNameAttr])
}

// ErrSessionNotFound is returned when an operation references a session token that was never issued
var ErrSessionNotFound = errors.New("session not found")

// ErrSessionAlreadyCompleted is returned when attributes are disclosed for a session a second time
var ErrSessionAlreadyCompleted = errors.New("session already completed")

// ErrCredentialsNotReady is returned when signing is requested before the disclosure completed.
// Callers should retry later, the condition is not fatal.
var ErrCredentialsNotReady = errors.New("credentials not yet available")

// ErrDocumentNotFound is returned when a document id does not resolve to a signed document record
var ErrDocumentNotFound = errors.New("document not found")

// ErrInvalidDocumentInput is returned when the document content to sign is missing or unusable
var ErrInvalidDocumentInput = errors.New("invalid document input")

// SignedDocument is the record kept for every signed document. Once inserted into a
// DocumentRegistry the record is immutable: Signature verifies against the canonical payload
// derived from DocumentHash, SessionToken, SignedAt and SignedBy for as long as it is unmodified.
type SignedDocument struct {
	DocumentID   string
	SessionToken string
	Credentials  CredentialMap
	DocumentHash string
	SignedAt     time.Time
	SignedBy     string
	Signature    string
	FileName     string
}

// SignResult is returned to the caller after a document was successfully signed.
// The caller is responsible for embedding DocumentID visibly into the output document.
type SignResult struct {
	DocumentID   string
	DocumentHash string
	Signature    string
	SignedBy     string
	SignedAt     time.Time
	Statement    string
}

// VerificationError enumerates the negative verification verdicts
type VerificationError string

const (
	// VerificationErrorDocumentNotFound means the document id is unknown
	VerificationErrorDocumentNotFound VerificationError = "document_not_found"
	// VerificationErrorSignatureMismatch means the stored signature does not verify against the stored record fields
	VerificationErrorSignatureMismatch VerificationError = "signature_mismatch"
)

// SignerInfo describes who signed a document
type SignerInfo struct {
	Name        string
	Credentials CredentialMap
}

// VerificationResult is the verdict for a verification request. A tampered record or unknown
// document id yields a negative verdict, never an error: adversarial input is expected input.
type VerificationResult struct {
	Verified     bool
	Error        VerificationError
	DocumentID   string
	Signer       *SignerInfo
	SignedAt     time.Time
	DocumentHash string
	FileName     string
}
