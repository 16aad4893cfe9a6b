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

package pkg

import (
	"sync"
	"time"

	"github.com/nuts-foundation/doc-signer/logging"
	"github.com/nuts-foundation/doc-signer/pkg/crypto"
	"github.com/nuts-foundation/doc-signer/pkg/services"
	"github.com/nuts-foundation/doc-signer/pkg/services/disclosure"
	"github.com/nuts-foundation/doc-signer/pkg/services/notary"
	"github.com/nuts-foundation/doc-signer/pkg/services/registry"
	"github.com/nuts-foundation/doc-signer/pkg/services/session"
)

// ConfAddress is the config key for the interface and port the http server binds to
const ConfAddress = "address"

// ConfPublicURL is the config key for the public URL the status endpoints are reachable on
const ConfPublicURL = "publicUrl"

// ConfDisclosureDelay is the config key for the delay of the mock disclosure
const ConfDisclosureDelay = "disclosureDelay"

// ConfKeySize is the config key for the signing key size in bits
const ConfKeySize = "keySize"

// DocSignerClient is the interface the API layer uses to reach the doc-signer backend
type DocSignerClient interface {
	SessionStore() services.SessionStore
	Disclosure() services.DisclosureService
	Notary() services.DocumentNotary
	PublicKey() (string, error)
	KeySize() int
}

// DocSignerConfig holds all the configuration params
type DocSignerConfig struct {
	Address         string
	PublicURL       string
	DisclosureDelay time.Duration
	KeySize         int
}

// DefaultConfig returns a fresh config filled with default values
func DefaultConfig() DocSignerConfig {
	return DocSignerConfig{
		Address:         "localhost:3002",
		DisclosureDelay: 2 * time.Second,
		KeySize:         crypto.MinKeySize,
	}
}

// DocSigner is the doc-signer backend. It ties the session store, the mock disclosure,
// the key material and the document notary together.
type DocSigner struct {
	Config DocSignerConfig

	configOnce sync.Once
	configDone bool

	keys         *crypto.KeyMaterial
	sessionStore services.SessionStore
	disclosure   services.DisclosureService
	notary       services.DocumentNotary
}

var instance *DocSigner
var oneBackend sync.Once

// DocSignerInstance returns the process wide doc-signer backend
func DocSignerInstance() *DocSigner {
	oneBackend.Do(func() {
		instance = &DocSigner{
			Config: DefaultConfig(),
		}
	})
	return instance
}

// Configure generates the key pair and builds the services. It only runs once,
// later calls are no-ops so the key material stays stable for the process lifetime.
func (ds *DocSigner) Configure() (err error) {
	ds.configOnce.Do(func() {
		var keys *crypto.KeyMaterial
		if keys, err = crypto.New(ds.Config.KeySize); err != nil {
			return
		}
		logging.Log().Info("signing key pair generated")

		ds.keys = keys
		ds.sessionStore = session.NewMemoryStore()
		ds.disclosure = disclosure.NewMockService(ds.sessionStore, ds.Config.DisclosureDelay, disclosure.DemoCredentials)
		ds.notary = notary.NewDocumentNotary(ds.sessionStore, registry.NewMemoryRegistry(), keys)
		ds.configDone = true
	})

	return err
}

// SessionStore returns the session store
func (ds *DocSigner) SessionStore() services.SessionStore {
	return ds.sessionStore
}

// Disclosure returns the disclosure service
func (ds *DocSigner) Disclosure() services.DisclosureService {
	return ds.disclosure
}

// Notary returns the document notary
func (ds *DocSigner) Notary() services.DocumentNotary {
	return ds.notary
}

// PublicKey exports the public key in PEM encoding
func (ds *DocSigner) PublicKey() (string, error) {
	return ds.keys.PublicKeyPEM()
}

// KeySize returns the size of the signing key in bits
func (ds *DocSigner) KeySize() int {
	return ds.keys.KeySize()
}
