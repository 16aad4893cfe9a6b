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

// SessionStore tracks disclosure sessions keyed by token, and their credentials once disclosed.
// The status transition from pending to completed is atomic: readers never observe a half-written state.
type SessionStore interface {
	// Start issues a new session in pending state and returns its token. It does not block.
	Start() string
	// Complete transitions a pending session to completed, attaching the credential map.
	// It returns ErrSessionNotFound for unknown tokens and ErrSessionAlreadyCompleted when called twice.
	Complete(token string, credentials CredentialMap) error
	// Status returns the current status of the session, or ErrSessionNotFound.
	Status(token string) (SessionStatus, error)
	// Credentials returns the disclosed credential map of a completed session.
	// It returns ErrCredentialsNotReady while the session is pending and ErrSessionNotFound for unknown tokens.
	Credentials(token string) (CredentialMap, error)
}

// DisclosureService delivers the disclosed attributes for a session out of band.
// An implementation must call SessionStore.Complete exactly once per session.
type DisclosureService interface {
	// Disclose starts the disclosure for the given session token
	Disclose(token string)
}

// DocumentRegistry stores signed document records. Records are append only, there is no update or delete.
type DocumentRegistry interface {
	// Insert stores the record and returns the generated document id
	Insert(document SignedDocument) string
	// Get returns the record for the given document id, or ErrDocumentNotFound
	Get(documentID string) (*SignedDocument, error)
}

// DocumentNotary signs documents under a completed disclosure session and verifies stored signatures.
type DocumentNotary interface {
	// SignDocument hashes the document content, signs the canonical payload binding the hash to the
	// session and stores the signed document record. It returns ErrSessionNotFound,
	// ErrCredentialsNotReady or ErrInvalidDocumentInput when signing is not possible.
	SignDocument(sessionToken string, document []byte, fileName string) (*SignResult, error)
	// VerifyDocument checks the stored signature for the given document id and returns a verdict
	VerifyDocument(documentID string) (*VerificationResult, error)
	// ProofToken builds a portable JWT over the record fields, signed with the process key.
	// It returns ErrDocumentNotFound for unknown document ids.
	ProofToken(documentID string) (string, error)
}
