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

package statement

import (
	"time"

	"github.com/cbroglie/mustache"
	"github.com/goodsign/monday"

	"github.com/nuts-foundation/doc-signer/pkg/services"
)

const timeLayout = "Monday, 2 January 2006 15:04:05"

// AmsterdamTimeZone is the zone signing times are displayed in
const AmsterdamTimeZone = "Europe/Amsterdam"

// DutchStatementText is the signature block text presented alongside a signed document.
// The caller draws it onto the document, rendering is not part of this service.
const DutchStatementText = `DIGITAAL ONDERTEKEND MET NL WALLET
Naam: {{signer_name}}
Geboortedatum: {{birth_date}}
Document: {{document_number}}
Ondertekend op: {{signed_at}}`

// Template holds the statement template text
type Template struct {
	Template string
}

// StandardStatement is the statement template used for signed documents
var StandardStatement = Template{Template: DutchStatementText}

func (t Template) timeLocation() *time.Location {
	loc, _ := time.LoadLocation(AmsterdamTimeZone)
	return loc
}

// Render fills the template with the signer attributes and the signing time formatted for the nl_NL locale
func (t Template) Render(credentials services.CredentialMap, signedAt time.Time) (string, error) {
	vars := map[string]string{
		"signer_name":     credentials.SignerName(),
		"birth_date":      credentials[services.BirthDateAttr],
		"document_number": credentials[services.DocumentNumberAttr],
		"signed_at":       monday.Format(signedAt.In(t.timeLocation()), timeLayout, monday.LocaleNlNL),
	}
	return mustache.Render(t.Template, vars)
}
