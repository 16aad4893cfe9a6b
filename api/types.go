package api

// CreateSessionResult is the answer to a session start request. StatusUrl can be polled
// (or presented to a wallet as QR) until the disclosure completes.
type CreateSessionResult struct {
	SessionToken string `json:"session_token"`
	StatusUrl    string `json:"status_url"`
}

// SessionStatusResult holds the current status of a disclosure session
type SessionStatusResult struct {
	Status       string `json:"status"`
	SessionToken string `json:"session_token"`
}

// SessionCredentialsResult holds the disclosed credentials of a completed session
type SessionCredentialsResult struct {
	Credentials  map[string]string `json:"credentials"`
	SessionToken string            `json:"session_token"`
}

// PendingResult is returned while the disclosure for a session has not completed yet
type PendingResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SignDocumentResult is the answer to a sign request
type SignDocumentResult struct {
	DocumentId   string `json:"document_id"`
	DocumentHash string `json:"document_hash"`
	Signature    string `json:"signature"`
	SignedBy     string `json:"signed_by"`
	SignedAt     string `json:"signed_at"`
	Statement    string `json:"statement"`
	FileName     string `json:"file_name"`
}

// SignerDetails describes the signer of a verified document
type SignerDetails struct {
	Name        string            `json:"name"`
	Credentials map[string]string `json:"credentials"`
}

// VerificationResult is the verdict for a verification request. The original file keeps
// the camelCase field names of the verify endpoint wire format.
type VerificationResult struct {
	Verified         bool           `json:"verified"`
	Error            *string        `json:"error,omitempty"`
	DocumentId       *string        `json:"documentId,omitempty"`
	Signer           *SignerDetails `json:"signer,omitempty"`
	SignedAt         *string        `json:"signedAt,omitempty"`
	DocumentHash     *string        `json:"documentHash,omitempty"`
	OriginalFileName *string        `json:"originalFileName,omitempty"`
}

// ProofTokenResult holds the portable proof token for a signed document
type ProofTokenResult struct {
	Token string `json:"token"`
}

// PublicKeyResult holds the public key in PEM encoding plus the signature algorithm parameters
type PublicKeyResult struct {
	PublicKey string `json:"publicKey"`
	Algorithm string `json:"algorithm"`
	KeySize   int    `json:"keySize"`
}
