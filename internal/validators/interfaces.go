// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request bodies before they reach the service
// layer.
//
// Core concepts:
//   - Validator: validates a raw JSON document against a named schema.
//   - Schemas: one JSON Schema per entity and operation, embedded from
//     schemas/*.json and addressed by their "$id".
//
// A rejected document yields a *ValidationError that matches ErrValidation,
// so transport layers can map it to a single status code.
package validators

import "context"

// Schema ids of the embedded request schemas.
const (
	schemaBaseURI = "https://bpl-web-backend/schemas/"

	ProfileCreate       = schemaBaseURI + "profile_create.json"
	ProfileUpdate       = schemaBaseURI + "profile_update.json"
	MedicationCreate    = schemaBaseURI + "medication_create.json"
	MedicationUpdate    = schemaBaseURI + "medication_update.json"
	BloodPressureCreate = schemaBaseURI + "blood_pressure_create.json"
	BloodPressureUpdate = schemaBaseURI + "blood_pressure_update.json"
)

// Validator defines validation of raw request documents.
type Validator interface {

	// Validate checks document against the schema registered as schemaID.
	Validate(ctx context.Context, schemaID string, document []byte) error
}
