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

package notary

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/nuts-foundation/doc-signer/logging"
	"github.com/nuts-foundation/doc-signer/pkg/crypto"
	"github.com/nuts-foundation/doc-signer/pkg/services"
	"github.com/nuts-foundation/doc-signer/pkg/services/signature"
	"github.com/nuts-foundation/doc-signer/pkg/statement"
)

// NowFunc is used to store a function that returns the current time. This can be changed when you want to mock the current time.
var NowFunc = time.Now

type documentNotaryService struct {
	sessions  services.SessionStore
	registry  services.DocumentRegistry
	engine    *signature.Engine
	keys      *crypto.KeyMaterial
	statement statement.Template
}

var _ services.DocumentNotary = (*documentNotaryService)(nil)

// NewDocumentNotary returns a notary that signs documents with the given key material and
// stores the resulting records in the given registry
func NewDocumentNotary(sessions services.SessionStore, registry services.DocumentRegistry, keys *crypto.KeyMaterial) services.DocumentNotary {
	return &documentNotaryService{
		sessions:  sessions,
		registry:  registry,
		engine:    signature.NewEngine(keys),
		keys:      keys,
		statement: statement.StandardStatement,
	}
}

// SignDocument signs the document hash together with the session metadata and stores the record.
// The registry is only written after every fallible step succeeded, a failed run leaves no partial state.
func (s *documentNotaryService) SignDocument(sessionToken string, document []byte, fileName string) (*services.SignResult, error) {
	if len(document) == 0 {
		return nil, services.ErrInvalidDocumentInput
	}

	credentials, err := s.sessions.Credentials(sessionToken)
	if err != nil {
		return nil, err
	}

	documentHash := signature.HashDocument(document)
	signedAt := NowFunc()
	signedBy := credentials.SignerName()

	payload := signature.Payload{
		DocumentHash: documentHash,
		SessionToken: sessionToken,
		Timestamp:    signedAt.UTC().Format(signature.TimestampLayout),
		Signer:       signedBy,
	}
	documentSignature, err := s.engine.SignPayload(payload)
	if err != nil {
		return nil, fmt.Errorf("could not sign document: %w", err)
	}

	statementText, err := s.statement.Render(credentials, signedAt)
	if err != nil {
		return nil, fmt.Errorf("could not render signature statement: %w", err)
	}

	documentID := s.registry.Insert(services.SignedDocument{
		SessionToken: sessionToken,
		Credentials:  credentials,
		DocumentHash: documentHash,
		SignedAt:     signedAt,
		SignedBy:     signedBy,
		Signature:    documentSignature,
		FileName:     fileName,
	})
	logging.Log().Infof("document signed: %s", documentID)

	return &services.SignResult{
		DocumentID:   documentID,
		DocumentHash: documentHash,
		Signature:    documentSignature,
		SignedBy:     signedBy,
		SignedAt:     signedAt,
		Statement:    statementText,
	}, nil
}

// VerifyDocument rebuilds the canonical payload from the stored record and checks the stored
// signature against it. Unknown ids and mismatching signatures are verdicts, not errors.
func (s *documentNotaryService) VerifyDocument(documentID string) (*services.VerificationResult, error) {
	document, err := s.registry.Get(documentID)
	if err != nil {
		return &services.VerificationResult{Verified: false, Error: services.VerificationErrorDocumentNotFound}, nil
	}

	payload := signature.Payload{
		DocumentHash: document.DocumentHash,
		SessionToken: document.SessionToken,
		Timestamp:    document.SignedAt.UTC().Format(signature.TimestampLayout),
		Signer:       document.SignedBy,
	}
	valid, err := s.engine.VerifyPayload(payload, document.Signature)
	if err != nil {
		// an undecodable stored signature counts as a mismatch, tampering is expected input
		logging.Log().WithError(err).Infof("signature of document %s does not decode", documentID)
		return &services.VerificationResult{Verified: false, Error: services.VerificationErrorSignatureMismatch}, nil
	}
	if !valid {
		return &services.VerificationResult{Verified: false, Error: services.VerificationErrorSignatureMismatch}, nil
	}

	return &services.VerificationResult{
		Verified:     true,
		DocumentID:   document.DocumentID,
		Signer:       &services.SignerInfo{Name: document.SignedBy, Credentials: document.Credentials},
		SignedAt:     document.SignedAt,
		DocumentHash: document.DocumentHash,
		FileName:     document.FileName,
	}, nil
}

// ProofToken builds an RS256 JWT over the stored record so a third party can check the
// signing facts with just the published public key
func (s *documentNotaryService) ProofToken(documentID string) (string, error) {
	document, err := s.registry.Get(documentID)
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"iss":           "doc-signer",
		"sub":           document.DocumentID,
		"iat":           document.SignedAt.Unix(),
		"document_hash": document.DocumentHash,
		"session_token": document.SessionToken,
		"signed_by":     document.SignedBy,
	}
	token, err := s.keys.SignJWT(claims)
	if err != nil {
		return "", fmt.Errorf("could not build proof token: %w", err)
	}
	return token, nil
}
