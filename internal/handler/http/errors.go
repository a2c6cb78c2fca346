// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"

	"github.com/MKhiriev/bpl-web-backend/internal/validators"
)

// Details of request-shape failures detected before any service call.
const (
	detailInvalidPathID    = "id: value is not a valid integer"
	detailInvalidPage      = "page: value is not a valid integer"
	detailInvalidPerPage   = "per_page: value is not a valid integer"
	detailInvalidJSONBody  = "Invalid JSON body"
	detailNotFound         = "Not Found"
	detailMethodNotAllowed = "Method Not Allowed"
)

// invalidRequest reports a malformed path parameter, query parameter or
// body. It is answered with 422 like any schema violation.
func invalidRequest(detail string) error {
	return &validators.ValidationError{Details: []string{detail}}
}

// invalidBody wraps a decoding failure of a body that already passed schema
// validation.
func invalidBody(err error) error {
	return invalidRequest(fmt.Sprintf("%s: %s", detailInvalidJSONBody, err))
}
