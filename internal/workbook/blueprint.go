package workbook

import "github.com/agentstation/endorecon/pkg/records"

// Field describes one column of a sheet.
type Field struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
	Type  string `yaml:"type"`
}

// SheetDef describes one sheet of the reconciliation workbook.
type SheetDef struct {
	Name   string
	Slug   string
	Fields []Field
}

// Sheet slugs for the three input views and three output collections.
const (
	SlugHR       = "hr_data"
	SlugRoster   = "genome_active_roster"
	SlugInsurer  = "insurer_data"
	SlugAdd      = "add_data"
	SlugEdit     = "edit_data"
	SlugOffboard = "offboard_data"
)

// field builds a Field with its display label derived from the key.
func field(key, fieldType string) Field {
	return Field{Key: key, Label: records.FieldLabel(key), Type: fieldType}
}

// personFields are the columns shared by the HR sheet and, with additions,
// the roster and output sheets.
func personFields() []Field {
	return []Field{
		field(records.FieldEmployeeID, "string"),
		field(records.FieldName, "string"),
		field(records.FieldRelationship, "string"),
		field(records.FieldGender, "string"),
		field(records.FieldDateOfBirth, "date"),
		field(records.FieldCoverageStartDate, "date"),
		field(records.FieldSumInsured, "string"),
		field(records.FieldMobile, "string"),
		field(records.FieldEmail, "string"),
		field(records.FieldCTC, "string"),
	}
}

// Blueprint returns the fixed sheet definitions of a reconciliation
// workbook, inputs first, output collections last.
func Blueprint() []SheetDef {
	rosterFields := append([]Field{
		field(records.FieldIsActive, "enum"),
		field(records.FieldUserID, "string"),
	}, personFields()...)
	rosterFields = append(rosterFields,
		field(records.FieldSlabID, "string"),
		field(records.FieldEnrolmentDueDate, "date"),
	)

	outputFields := append(personFields(),
		field(records.FieldEnrolmentDueDate, "date"),
		field(records.FieldSlabID, "string"),
	)

	editFields := append(append([]Field{}, outputFields...),
		field(records.FieldMismatch, "string"),
	)

	return []SheetDef{
		{Name: "HR Data", Slug: SlugHR, Fields: personFields()},
		{Name: "Genome Active Roster", Slug: SlugRoster, Fields: rosterFields},
		{Name: "Insurer Data", Slug: SlugInsurer, Fields: append(personFields(),
			field(records.FieldSlabID, "string"))},
		{Name: "Add", Slug: SlugAdd, Fields: outputFields},
		{Name: "Edit", Slug: SlugEdit, Fields: editFields},
		{Name: "Offboard", Slug: SlugOffboard, Fields: []Field{
			field(records.FieldUserID, "string"),
			field(records.FieldEmployeeID, "string"),
			field(records.FieldName, "string"),
			field(records.FieldRelationship, "string"),
			field(records.FieldDateOfLeaving, "date"),
			field(records.FieldPolicyException, "string"),
			field(records.FieldRequiresConfirm, "boolean"),
		}},
	}
}
