package notary

import (
	"bytes"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	servicesMock "github.com/nuts-foundation/doc-signer/mock/services"
	"github.com/nuts-foundation/doc-signer/pkg/crypto"
	"github.com/nuts-foundation/doc-signer/pkg/services"
	"github.com/nuts-foundation/doc-signer/pkg/services/registry"
	"github.com/nuts-foundation/doc-signer/pkg/services/session"
	"github.com/nuts-foundation/doc-signer/pkg/services/signature"
)

var testKeys *crypto.KeyMaterial

func keys(t *testing.T) *crypto.KeyMaterial {
	t.Helper()
	if testKeys == nil {
		var err error
		testKeys, err = crypto.New(crypto.MinKeySize)
		if err != nil {
			t.Fatal(err)
		}
	}
	return testKeys
}

func testCredentials() services.CredentialMap {
	return services.CredentialMap{
		"given_name":      "Jan",
		"family_name":     "Jansen",
		"birth_date":      "1990-05-15",
		"document_number": "NLD123456789",
		"nationality":     "Nederlandse",
	}
}

// completedSession builds a store with one completed session and returns the store and its token
func completedSession(t *testing.T) (*session.MemoryStore, string) {
	t.Helper()
	store := session.NewMemoryStore()
	token := store.Start()
	if err := store.Complete(token, testCredentials()); err != nil {
		t.Fatal(err)
	}
	return store, token
}

func TestDocumentNotary_SignDocument(t *testing.T) {
	document := bytes.Repeat([]byte{0x42}, 100)

	t.Run("signing stores a record whose hash and signature check out", func(t *testing.T) {
		store, token := completedSession(t)
		documents := registry.NewMemoryRegistry()
		notary := NewDocumentNotary(store, documents, keys(t))

		result, err := notary.SignDocument(token, document, "contract.pdf")
		if !assert.NoError(t, err) {
			return
		}

		assert.NotEmpty(t, result.DocumentID)
		assert.Equal(t, signature.HashDocument(document), result.DocumentHash)
		assert.Equal(t, "Jan Jansen", result.SignedBy)
		assert.Contains(t, result.Statement, "Jan Jansen")

		stored, err := documents.Get(result.DocumentID)
		assert.NoError(t, err)
		assert.Equal(t, token, stored.SessionToken)
		assert.Equal(t, testCredentials(), stored.Credentials)
		assert.Equal(t, result.Signature, stored.Signature)
		assert.Equal(t, "contract.pdf", stored.FileName)

		verdict, err := notary.VerifyDocument(result.DocumentID)
		assert.NoError(t, err)
		assert.True(t, verdict.Verified)
	})

	t.Run("a missing name attribute does not fail signing", func(t *testing.T) {
		store := session.NewMemoryStore()
		token := store.Start()
		assert.NoError(t, store.Complete(token, services.CredentialMap{"given_name": "Jan"}))
		notary := NewDocumentNotary(store, registry.NewMemoryRegistry(), keys(t))

		result, err := notary.SignDocument(token, document, "contract.pdf")
		assert.NoError(t, err)
		assert.Equal(t, "Jan ", result.SignedBy)
	})

	t.Run("an unknown session leaves no record behind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := servicesMock.NewMockSessionStore(ctrl)
		documents := servicesMock.NewMockDocumentRegistry(ctrl)
		store.EXPECT().Credentials("unknown").Return(nil, services.ErrSessionNotFound)
		documents.EXPECT().Insert(gomock.Any()).Times(0)

		notary := NewDocumentNotary(store, documents, keys(t))

		result, err := notary.SignDocument("unknown", document, "contract.pdf")
		assert.Nil(t, result)
		assert.Equal(t, services.ErrSessionNotFound, err)
	})

	t.Run("a pending session is a retryable failure", func(t *testing.T) {
		store := session.NewMemoryStore()
		token := store.Start()
		notary := NewDocumentNotary(store, registry.NewMemoryRegistry(), keys(t))

		result, err := notary.SignDocument(token, document, "contract.pdf")
		assert.Nil(t, result)
		assert.Equal(t, services.ErrCredentialsNotReady, err)
	})

	t.Run("an empty document is rejected", func(t *testing.T) {
		store, token := completedSession(t)
		notary := NewDocumentNotary(store, registry.NewMemoryRegistry(), keys(t))

		result, err := notary.SignDocument(token, nil, "contract.pdf")
		assert.Nil(t, result)
		assert.Equal(t, services.ErrInvalidDocumentInput, err)
	})
}

func TestDocumentNotary_VerifyDocument(t *testing.T) {
	document := []byte("a very important agreement")

	signedRecord := func(t *testing.T) (services.DocumentNotary, *registry.MemoryRegistry, *services.SignedDocument) {
		t.Helper()
		store, token := completedSession(t)
		documents := registry.NewMemoryRegistry()
		notary := NewDocumentNotary(store, documents, keys(t))
		result, err := notary.SignDocument(token, document, "contract.pdf")
		if err != nil {
			t.Fatal(err)
		}
		record, err := documents.Get(result.DocumentID)
		if err != nil {
			t.Fatal(err)
		}
		return notary, documents, record
	}

	t.Run("a valid record verifies with the full signer details", func(t *testing.T) {
		notary, _, record := signedRecord(t)

		verdict, err := notary.VerifyDocument(record.DocumentID)
		assert.NoError(t, err)
		assert.True(t, verdict.Verified)
		assert.Empty(t, verdict.Error)
		assert.Equal(t, record.DocumentID, verdict.DocumentID)
		assert.Equal(t, "Jan Jansen", verdict.Signer.Name)
		assert.Equal(t, testCredentials(), verdict.Signer.Credentials)
		assert.Equal(t, record.DocumentHash, verdict.DocumentHash)
		assert.Equal(t, "contract.pdf", verdict.FileName)
	})

	t.Run("verification is repeatable", func(t *testing.T) {
		notary, _, record := signedRecord(t)

		first, _ := notary.VerifyDocument(record.DocumentID)
		second, _ := notary.VerifyDocument(record.DocumentID)
		assert.True(t, first.Verified)
		assert.True(t, second.Verified)
	})

	t.Run("an unknown id yields a negative verdict, not an error", func(t *testing.T) {
		notary := NewDocumentNotary(session.NewMemoryStore(), registry.NewMemoryRegistry(), keys(t))

		verdict, err := notary.VerifyDocument("unknown")
		assert.NoError(t, err)
		assert.False(t, verdict.Verified)
		assert.Equal(t, services.VerificationErrorDocumentNotFound, verdict.Error)
	})

	t.Run("a tampered signature yields a mismatch verdict", func(t *testing.T) {
		_, _, record := signedRecord(t)

		tampered := *record
		if tampered.Signature[0] == 'A' {
			tampered.Signature = "B" + tampered.Signature[1:]
		} else {
			tampered.Signature = "A" + tampered.Signature[1:]
		}

		documents := registry.NewMemoryRegistry()
		documentID := documents.Insert(tampered)
		notary := NewDocumentNotary(session.NewMemoryStore(), documents, keys(t))

		verdict, err := notary.VerifyDocument(documentID)
		assert.NoError(t, err)
		assert.False(t, verdict.Verified)
		assert.Equal(t, services.VerificationErrorSignatureMismatch, verdict.Error)
	})

	t.Run("a tampered record field yields a mismatch verdict", func(t *testing.T) {
		_, _, record := signedRecord(t)

		tampered := *record
		tampered.SignedBy = "Piet Pietersen"

		documents := registry.NewMemoryRegistry()
		documentID := documents.Insert(tampered)
		notary := NewDocumentNotary(session.NewMemoryStore(), documents, keys(t))

		verdict, err := notary.VerifyDocument(documentID)
		assert.NoError(t, err)
		assert.False(t, verdict.Verified)
		assert.Equal(t, services.VerificationErrorSignatureMismatch, verdict.Error)
	})

	t.Run("an undecodable signature yields a mismatch verdict, not an error", func(t *testing.T) {
		_, _, record := signedRecord(t)

		tampered := *record
		tampered.Signature = "### definitely not base64 ###"

		documents := registry.NewMemoryRegistry()
		documentID := documents.Insert(tampered)
		notary := NewDocumentNotary(session.NewMemoryStore(), documents, keys(t))

		verdict, err := notary.VerifyDocument(documentID)
		assert.NoError(t, err)
		assert.False(t, verdict.Verified)
		assert.Equal(t, services.VerificationErrorSignatureMismatch, verdict.Error)
	})
}

func TestDocumentNotary_ProofToken(t *testing.T) {
	document := []byte("a very important agreement")

	t.Run("the token verifies against the public key and carries the record claims", func(t *testing.T) {
		store, token := completedSession(t)
		notary := NewDocumentNotary(store, registry.NewMemoryRegistry(), keys(t))
		result, err := notary.SignDocument(token, document, "contract.pdf")
		if !assert.NoError(t, err) {
			return
		}

		proof, err := notary.ProofToken(result.DocumentID)
		if !assert.NoError(t, err) {
			return
		}

		parsed, err := jwt.Parse(proof, func(token *jwt.Token) (interface{}, error) {
			return keys(t).PublicKey(), nil
		})
		if !assert.NoError(t, err) {
			return
		}
		assert.True(t, parsed.Valid)

		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, result.DocumentID, claims["sub"])
		assert.Equal(t, result.DocumentHash, claims["document_hash"])
		assert.Equal(t, "Jan Jansen", claims["signed_by"])
		assert.Equal(t, token, claims["session_token"])
	})

	t.Run("an unknown id yields ErrDocumentNotFound", func(t *testing.T) {
		notary := NewDocumentNotary(session.NewMemoryStore(), registry.NewMemoryRegistry(), keys(t))

		proof, err := notary.ProofToken("unknown")
		assert.Empty(t, proof)
		assert.Equal(t, services.ErrDocumentNotFound, err)
	})
}

func TestNowFunc(t *testing.T) {
	// the timestamp is captured once at signing time and reused verbatim at verification
	fixed := time.Date(2020, 10, 1, 11, 46, 0, 0, time.UTC)
	NowFunc = func() time.Time { return fixed }
	defer func() { NowFunc = time.Now }()

	store, token := completedSession(t)
	documents := registry.NewMemoryRegistry()
	notary := NewDocumentNotary(store, documents, keys(t))

	result, err := notary.SignDocument(token, []byte("document"), "contract.pdf")
	if !assert.NoError(t, err) {
		return
	}
	assert.True(t, fixed.Equal(result.SignedAt))

	verdict, err := notary.VerifyDocument(result.DocumentID)
	assert.NoError(t, err)
	assert.True(t, verdict.Verified)
	assert.True(t, fixed.Equal(verdict.SignedAt))
}
