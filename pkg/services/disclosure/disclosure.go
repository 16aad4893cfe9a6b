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

package disclosure

import (
	"time"

	"github.com/nuts-foundation/doc-signer/logging"
	"github.com/nuts-foundation/doc-signer/pkg/services"
)

// DemoCredentials is the attribute set disclosed by the mock wallet
var DemoCredentials = services.CredentialMap{
	services.GivenNameAttr:      "Jan",
	services.FamilyNameAttr:     "Jansen",
	services.BirthDateAttr:      "1990-05-15",
	services.DocumentNumberAttr: "NLD123456789",
	services.NationalityAttr:    "Nederlandse",
}

// MockService simulates a wallet disclosing attributes for a session. A real implementation
// would drive a disclosure protocol with a credential issuer, this one delivers a fixed
// attribute set after a configurable delay.
type MockService struct {
	store      services.SessionStore
	delay      time.Duration
	attributes services.CredentialMap
}

var _ services.DisclosureService = (*MockService)(nil)

// NewMockService returns a disclosure service that completes each session with the given
// attributes after the given delay
func NewMockService(store services.SessionStore, delay time.Duration, attributes services.CredentialMap) *MockService {
	return &MockService{store: store, delay: delay, attributes: attributes}
}

// Disclose spawns a task that completes the session exactly once after the configured delay
func (s *MockService) Disclose(token string) {
	go func() {
		time.Sleep(s.delay)
		if err := s.store.Complete(token, s.attributes); err != nil {
			logging.Log().WithError(err).Errorf("could not complete session %s", token)
			return
		}
		logging.Log().Infof("credentials disclosed for session: %s", token)
	}()
}
