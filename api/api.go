package api

import (
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nuts-foundation/doc-signer/logging"
	"github.com/nuts-foundation/doc-signer/pkg"
	"github.com/nuts-foundation/doc-signer/pkg/crypto"
	"github.com/nuts-foundation/doc-signer/pkg/services"
)

// Wrapper bridges the generated api types and http logic to the internal types and logic.
// It checks required parameters and converts between the api wire format and the internal
// formats. It does not perform any business logic.
type Wrapper struct {
	DocSigner pkg.DocSignerClient
	PublicURL string
}

var _ ServerInterface = (*Wrapper)(nil)

// CreateSession starts a new disclosure session and schedules the disclosure for it.
// It returns the session token together with the url the status can be polled on.
func (w *Wrapper) CreateSession(ctx echo.Context) error {
	token := w.DocSigner.SessionStore().Start()
	w.DocSigner.Disclosure().Disclose(token)
	logging.Log().Infof("new session started: %s", token)

	answer := CreateSessionResult{
		SessionToken: token,
		StatusUrl:    fmt.Sprintf("%s/api/sessions/%s/status", strings.TrimSuffix(w.PublicURL, "/"), token),
	}
	return ctx.JSON(http.StatusCreated, answer)
}

// GetSessionStatus returns the current status of the session, or a 404 when the token was never issued
func (w *Wrapper) GetSessionStatus(ctx echo.Context, sessionToken string) error {
	status, err := w.DocSigner.SessionStore().Status(sessionToken)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}

	answer := SessionStatusResult{
		Status:       string(status),
		SessionToken: sessionToken,
	}
	return ctx.JSON(http.StatusOK, answer)
}

// GetSessionCredentials returns the disclosed credentials of a completed session.
// While the disclosure is still pending it answers 202 so the caller knows to retry.
func (w *Wrapper) GetSessionCredentials(ctx echo.Context, sessionToken string) error {
	credentials, err := w.DocSigner.SessionStore().Credentials(sessionToken)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		if errors.Is(err, services.ErrCredentialsNotReady) {
			return ctx.JSON(http.StatusAccepted, PendingResult{
				Status:  string(services.StatusPending),
				Message: "credentials not yet available",
			})
		}
		return err
	}

	answer := SessionCredentialsResult{
		Credentials:  credentials,
		SessionToken: sessionToken,
	}
	return ctx.JSON(http.StatusOK, answer)
}

// SignDocument reads the multipart upload and lets the notary sign the document content
// under the given session
func (w *Wrapper) SignDocument(ctx echo.Context) error {
	sessionToken := ctx.FormValue("sessionToken")
	if sessionToken == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing form value: sessionToken")
	}

	fileHeader, err := ctx.FormFile("document")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no document uploaded")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("could not open uploaded document: %s", err))
	}
	defer file.Close()
	document, err := ioutil.ReadAll(file)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("could not read uploaded document: %s", err))
	}

	logging.Log().Infof("signing document for session: %s", sessionToken)

	result, err := w.DocSigner.Notary().SignDocument(sessionToken, document, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		if errors.Is(err, services.ErrCredentialsNotReady) {
			return echo.NewHTTPError(http.StatusConflict, "credentials not yet available, retry later")
		}
		if errors.Is(err, services.ErrInvalidDocumentInput) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		logging.Log().WithError(err).Error("error while signing document")
		return err
	}

	answer := SignDocumentResult{
		DocumentId:   result.DocumentID,
		DocumentHash: result.DocumentHash,
		Signature:    result.Signature,
		SignedBy:     result.SignedBy,
		SignedAt:     result.SignedAt.UTC().Format(time.RFC3339),
		Statement:    result.Statement,
		FileName:     fileHeader.Filename,
	}
	return ctx.JSON(http.StatusOK, answer)
}

// VerifyDocument returns the verification verdict for a signed document. Negative verdicts
// are regular answers: an unknown id yields a 404 body, a mismatch a 200 body, never a 5xx.
func (w *Wrapper) VerifyDocument(ctx echo.Context, documentId string) error {
	result, err := w.DocSigner.Notary().VerifyDocument(documentId)
	if err != nil {
		logging.Log().WithError(err).Error("error while verifying document")
		return err
	}

	if !result.Verified {
		verificationError := string(result.Error)
		answer := VerificationResult{Verified: false, Error: &verificationError}
		if result.Error == services.VerificationErrorDocumentNotFound {
			return ctx.JSON(http.StatusNotFound, answer)
		}
		return ctx.JSON(http.StatusOK, answer)
	}

	signedAt := result.SignedAt.UTC().Format(time.RFC3339)
	answer := VerificationResult{
		Verified:   true,
		DocumentId: &result.DocumentID,
		Signer: &SignerDetails{
			Name:        result.Signer.Name,
			Credentials: result.Signer.Credentials,
		},
		SignedAt:         &signedAt,
		DocumentHash:     &result.DocumentHash,
		OriginalFileName: &result.FileName,
	}
	return ctx.JSON(http.StatusOK, answer)
}

// GetProofToken returns the portable proof token for a signed document
func (w *Wrapper) GetProofToken(ctx echo.Context, documentId string) error {
	token, err := w.DocSigner.Notary().ProofToken(documentId)
	if err != nil {
		if errors.Is(err, services.ErrDocumentNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}
	return ctx.JSON(http.StatusOK, ProofTokenResult{Token: token})
}

// GetPublicKey exports the public key so third parties can verify signatures themselves
func (w *Wrapper) GetPublicKey(ctx echo.Context) error {
	publicKey, err := w.DocSigner.PublicKey()
	if err != nil {
		return err
	}

	answer := PublicKeyResult{
		PublicKey: publicKey,
		Algorithm: crypto.SignatureAlgorithm,
		KeySize:   w.DocSigner.KeySize(),
	}
	return ctx.JSON(http.StatusOK, answer)
}
