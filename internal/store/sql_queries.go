// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/bpl-web-backend/models"
)

const (
	tableUserProfiles         = "user_profiles"
	tableMedications          = "medications"
	tableBloodPressureRecords = "blood_pressure_records"
)

// Column lists used in both SELECT and RETURNING clauses. Scan order in the
// repositories follows these lists. id and date_of_birth are cast to text so
// uuid and date columns scan into strings on every driver.
var (
	profileColumns = []string{
		"CAST(id AS TEXT) AS id",
		"CAST(user_id AS TEXT) AS user_id",
		"full_name",
		"nickname",
		"CAST(date_of_birth AS TEXT) AS date_of_birth",
		"medical_conditions",
		"gender",
	}

	medicationColumns = []string{
		"id",
		"CAST(user_id AS TEXT) AS user_id",
		"medicine_name",
		"dosage_mg",
		"quantity",
		"intake_time",
		"is_active",
		"notes",
	}

	bloodPressureColumns = []string{
		"id",
		"CAST(user_id AS TEXT) AS user_id",
		"record_datetime",
		"systolic",
		"diastolic",
		"heart_rate",
		"notes",
	}
)

func returning(columns []string) string {
	suffix := "RETURNING "
	for i, column := range columns {
		if i > 0 {
			suffix += ", "
		}
		suffix += column
	}
	return suffix
}

// buildUpdateQuery builds "UPDATE table SET <patch> WHERE <where> RETURNING <columns>".
// An empty patch is rejected; the service layer is expected to catch it first.
func buildUpdateQuery(b sq.StatementBuilderType, table string, patch models.Patch, where sq.Eq, columns []string) (string, []any, error) {
	if len(patch) == 0 {
		return "", nil, fmt.Errorf("%w: empty patch for %s", ErrBuildingSQLQuery, table)
	}

	query, args, err := b.Update(table).
		SetMap(patch).
		Where(where).
		Suffix(returning(columns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteQuery(b sq.StatementBuilderType, table string, where sq.Eq) (string, []any, error) {
	query, args, err := b.Delete(table).Where(where).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// ── user_profiles ────────────────────────────────────────────────────────────

func buildSelectProfileQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	query, args, err := b.Select(profileColumns...).
		From(tableUserProfiles).
		Where(sq.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertProfileQuery(b sq.StatementBuilderType, profile models.UserProfile) (string, []any, error) {
	query, args, err := b.Insert(tableUserProfiles).
		Columns("id", "user_id", "full_name", "nickname", "date_of_birth", "medical_conditions", "gender").
		Values(profile.ID, profile.UserID, profile.FullName, profile.Nickname, profile.DateOfBirth, profile.MedicalConditions, profile.Gender).
		Suffix(returning(profileColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpdateProfileQuery(b sq.StatementBuilderType, userID string, patch models.Patch) (string, []any, error) {
	return buildUpdateQuery(b, tableUserProfiles, patch, sq.Eq{"user_id": userID}, profileColumns)
}

// ── medications ──────────────────────────────────────────────────────────────

func buildSelectMedicationsQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	query, args, err := b.Select(medicationColumns...).
		From(tableMedications).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertMedicationQuery(b sq.StatementBuilderType, medication models.Medication) (string, []any, error) {
	query, args, err := b.Insert(tableMedications).
		Columns("user_id", "medicine_name", "dosage_mg", "quantity", "intake_time", "is_active", "notes").
		Values(medication.UserID, medication.MedicineName, medication.DosageMg, medication.Quantity, medication.IntakeTime, medication.IsActive, medication.Notes).
		Suffix(returning(medicationColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpdateMedicationQuery(b sq.StatementBuilderType, userID string, id int64, patch models.Patch) (string, []any, error) {
	return buildUpdateQuery(b, tableMedications, patch, sq.Eq{"id": id, "user_id": userID}, medicationColumns)
}

func buildDeleteMedicationQuery(b sq.StatementBuilderType, userID string, id int64) (string, []any, error) {
	return buildDeleteQuery(b, tableMedications, sq.Eq{"id": id, "user_id": userID})
}

// ── blood_pressure_records ───────────────────────────────────────────────────

func selectBloodPressureRecords(b sq.StatementBuilderType, userID string) sq.SelectBuilder {
	return b.Select(bloodPressureColumns...).
		From(tableBloodPressureRecords).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("record_datetime DESC", "id DESC")
}

// buildSelectBloodPressureRecordsQuery returns one page of records, newest
// first. page=2, per_page=25 yields OFFSET 25 LIMIT 25.
func buildSelectBloodPressureRecordsQuery(b sq.StatementBuilderType, userID string, page models.Page) (string, []any, error) {
	query, args, err := selectBloodPressureRecords(b, userID).
		Limit(page.Limit()).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectAllBloodPressureRecordsQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	query, args, err := selectBloodPressureRecords(b, userID).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertBloodPressureRecordQuery(b sq.StatementBuilderType, record models.BloodPressureRecord) (string, []any, error) {
	query, args, err := b.Insert(tableBloodPressureRecords).
		Columns("user_id", "record_datetime", "systolic", "diastolic", "heart_rate", "notes").
		Values(record.UserID, record.RecordDatetime, record.Systolic, record.Diastolic, record.HeartRate, record.Notes).
		Suffix(returning(bloodPressureColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpdateBloodPressureRecordQuery(b sq.StatementBuilderType, userID string, id int64, patch models.Patch) (string, []any, error) {
	return buildUpdateQuery(b, tableBloodPressureRecords, patch, sq.Eq{"id": id, "user_id": userID}, bloodPressureColumns)
}

func buildDeleteBloodPressureRecordQuery(b sq.StatementBuilderType, userID string, id int64) (string, []any, error) {
	return buildDeleteQuery(b, tableBloodPressureRecords, sq.Eq{"id": id, "user_id": userID})
}
