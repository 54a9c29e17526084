package workbook

import (
	"strconv"

	"github.com/agentstation/endorecon/pkg/errors"
	"github.com/agentstation/endorecon/pkg/reconcile"
	"github.com/agentstation/endorecon/pkg/records"
)

// Materialize rewrites the three output collections from a classification.
// Each target sheet is fully replaced: cleared first, then repopulated, so
// re-running with the same classification is idempotent.
func (wb *Workbook) Materialize(result *reconcile.Classification) error {
	addSheet, ok := wb.Sheet(SlugAdd)
	if !ok {
		return errors.NewNotFoundError("sheet", SlugAdd)
	}
	editSheet, ok := wb.Sheet(SlugEdit)
	if !ok {
		return errors.NewNotFoundError("sheet", SlugEdit)
	}
	offboardSheet, ok := wb.Sheet(SlugOffboard)
	if !ok {
		return errors.NewNotFoundError("sheet", SlugOffboard)
	}

	addSheet.Clear()
	for _, record := range result.ToAdd {
		addSheet.Insert(personRow(record))
	}

	editSheet.Clear()
	for _, edit := range result.ToEdit {
		row := personRow(edit.Record)
		row[records.FieldMismatch] = reconcile.Format(edit.Mismatches)
		editSheet.Insert(row)
	}

	offboardSheet.Clear()
	for _, offboard := range result.ToOffboard {
		offboardSheet.Insert(records.Row{
			records.FieldUserID:          offboard.Record.UserID,
			records.FieldEmployeeID:      offboard.Record.EmployeeID,
			records.FieldName:            offboard.Record.Name,
			records.FieldRelationship:    offboard.Record.Relationship,
			records.FieldDateOfLeaving:   "",
			records.FieldPolicyException: "",
			records.FieldRequiresConfirm: strconv.FormatBool(offboard.RequiresConfirmation),
		})
	}

	return nil
}

// personRow renders a canonical record back into schema-keyed row form for
// the add and edit sheets.
func personRow(record *records.CanonicalRecord) records.Row {
	row := records.Row{
		records.FieldEmployeeID:        record.EmployeeID,
		records.FieldName:              record.Name,
		records.FieldRelationship:      record.Relationship,
		records.FieldGender:            record.Gender,
		records.FieldDateOfBirth:       record.DateOfBirth,
		records.FieldCoverageStartDate: record.CoverageStartDate,
		records.FieldEnrolmentDueDate:  record.EnrolmentDueDate,
		records.FieldSumInsured:        record.SumInsured,
		records.FieldMobile:            record.Mobile,
		records.FieldEmail:             record.Email,
		records.FieldCTC:               record.CTC,
	}
	if record.HasSlab() {
		row[records.FieldSlabID] = strconv.Itoa(*record.SlabID)
	} else {
		row[records.FieldSlabID] = ""
	}
	return row
}
