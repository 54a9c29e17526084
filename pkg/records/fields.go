package records

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Schema field keys shared by the workbook sheets. Input rows are keyed by
// these names; the normalizer maps them onto CanonicalRecord fields.
const (
	FieldEmployeeID        = "employee_id"
	FieldName              = "name"
	FieldRelationship      = "relationship_to_account_holder"
	FieldGender            = "gender"
	FieldDateOfBirth       = "date_of_birth_dd_mmm_yyyy"
	FieldCoverageStartDate = "coverage_start_date_dd_mmm_yyyy"
	FieldEnrolmentDueDate  = "enrolment_due_date_dd_mmm_yyyy"
	FieldSumInsured        = "sum_insured"
	FieldSlabID            = "slab_id"
	FieldMobile            = "mobile"
	FieldEmail             = "email_address"
	FieldCTC               = "ctc"
	FieldUserID            = "user_id"
	FieldIsActive          = "is_active"
	FieldDateOfLeaving     = "date_of_leaving_dd_mmm_yyyy"
	FieldPolicyException   = "policy_exception"
	FieldMismatch          = "mismatch"
	FieldRequiresConfirm   = "required_confirmation"
)

// titleCaser title-cases label words; built once since cases.Caser carries
// internal state.
var titleCaser = cases.Title(language.English)

// labelOverrides holds words whose display form is not plain title case.
var labelOverrides = map[string]string{
	"id":   "ID",
	"ctc":  "CTC",
	"dd":   "DD",
	"mmm":  "MMM",
	"yyyy": "YYYY",
}

// FieldLabel derives the human-readable display label for a schema field key,
// e.g. "employee_id" → "Employee ID" and
// "date_of_birth_dd_mmm_yyyy" → "Date of Birth (DD/MMM/YYYY)".
func FieldLabel(key string) string {
	words := strings.Split(key, "_")

	// Date fields carry a trailing dd_mmm_yyyy format hint rendered in
	// parentheses.
	dateHint := ""
	if n := len(words); n >= 3 && words[n-3] == "dd" && words[n-2] == "mmm" && words[n-1] == "yyyy" {
		words = words[:n-3]
		dateHint = " (DD/MMM/YYYY)"
	}

	parts := make([]string, 0, len(words))
	for _, word := range words {
		if word == "" {
			continue
		}
		if override, ok := labelOverrides[word]; ok {
			parts = append(parts, override)
			continue
		}
		if word == "to" || word == "of" {
			parts = append(parts, word)
			continue
		}
		parts = append(parts, titleCaser.String(word))
	}
	return strings.Join(parts, " ") + dateHint
}
