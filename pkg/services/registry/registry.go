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

package registry

import (
	"sync"

	"github.com/google/uuid"

	"github.com/nuts-foundation/doc-signer/pkg/services"
)

// MemoryRegistry is a lock protected in-memory document registry. Records are append only
// and kept for the process lifetime.
type MemoryRegistry struct {
	mutex     sync.RWMutex
	documents map[string]services.SignedDocument
}

var _ services.DocumentRegistry = (*MemoryRegistry)(nil)

// NewMemoryRegistry returns an empty document registry
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{documents: map[string]services.SignedDocument{}}
}

// Insert generates a document id, stores the record under it and returns the id.
// The credential map is snapshotted so later mutation by the caller cannot reach the stored record.
func (r *MemoryRegistry) Insert(document services.SignedDocument) string {
	documentID := uuid.New().String()
	document.DocumentID = documentID
	document.Credentials = document.Credentials.Copy()

	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.documents[documentID] = document

	return documentID
}

// Get returns a copy of the record for the given document id
func (r *MemoryRegistry) Get(documentID string) (*services.SignedDocument, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	document, ok := r.documents[documentID]
	if !ok {
		return nil, services.ErrDocumentNotFound
	}
	document.Credentials = document.Credentials.Copy()
	return &document, nil
}
