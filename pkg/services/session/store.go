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

package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/nuts-foundation/doc-signer/pkg/services"
)

type session struct {
	status      services.SessionStatus
	credentials services.CredentialMap
}

// MemoryStore is a lock protected in-memory session store. Sessions are retained for the
// process lifetime, there is no explicit destruction in this scope.
type MemoryStore struct {
	mutex    sync.RWMutex
	sessions map[string]session
}

var _ services.SessionStore = (*MemoryStore)(nil)

// NewMemoryStore returns an empty session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: map[string]session{}}
}

// Start issues a new pending session and returns its token
func (s *MemoryStore) Start() string {
	token := uuid.New().String()

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.sessions[token] = session{status: services.StatusPending}

	return token
}

// Complete transitions a pending session to completed, attaching a snapshot of the credentials.
// Completing a session twice is rejected so previously returned credentials can never change.
func (s *MemoryStore) Complete(token string, credentials services.CredentialMap) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	current, ok := s.sessions[token]
	if !ok {
		return services.ErrSessionNotFound
	}
	if current.status == services.StatusCompleted {
		return services.ErrSessionAlreadyCompleted
	}

	s.sessions[token] = session{
		status:      services.StatusCompleted,
		credentials: credentials.Copy(),
	}
	return nil
}

// Status returns the current status of the session
func (s *MemoryStore) Status(token string) (services.SessionStatus, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	current, ok := s.sessions[token]
	if !ok {
		return "", services.ErrSessionNotFound
	}
	return current.status, nil
}

// Credentials returns a copy of the disclosed credentials of a completed session
func (s *MemoryStore) Credentials(token string) (services.CredentialMap, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	current, ok := s.sessions[token]
	if !ok {
		return nil, services.ErrSessionNotFound
	}
	if current.status != services.StatusCompleted {
		return nil, services.ErrCredentialsNotReady
	}
	return current.credentials.Copy(), nil
}
