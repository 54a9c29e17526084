package reconcile

import (
	"fmt"
	"strings"

	"github.com/agentstation/endorecon/pkg/records"
)

// Mismatch is a field-level disagreement between two records sharing an
// identity key. ValueA is the Genome/HR side, ValueB the insurer side; both
// are carried raw for display.
type Mismatch struct {
	Field  string
	ValueA string
	ValueB string
}

// Display labels for the compared fields.
const (
	LabelRelationship      = "Relationship"
	LabelGender            = "Gender"
	LabelDOB               = "DOB"
	LabelCoverageStartDate = "Coverage Start Date"
	LabelSumInsured        = "Sum Insured"
)

// comparedField pairs a display label with a field accessor. The table
// fixes both the compared set and the output order.
type comparedField struct {
	label string
	value func(*records.CanonicalRecord) string
}

// comparedFields is the fixed comparison set: exactly relationship, gender,
// date of birth, coverage start date, and sum insured. Mobile and email are
// intentionally excluded.
var comparedFields = []comparedField{
	{LabelRelationship, func(r *records.CanonicalRecord) string { return r.Relationship }},
	{LabelGender, func(r *records.CanonicalRecord) string { return r.Gender }},
	{LabelDOB, func(r *records.CanonicalRecord) string { return r.DateOfBirth }},
	{LabelCoverageStartDate, func(r *records.CanonicalRecord) string { return r.CoverageStartDate }},
	{LabelSumInsured, func(r *records.CanonicalRecord) string { return r.SumInsured }},
}

// Detect compares two records presumed to share an identity key and returns
// one Mismatch per disagreeing field, in fixed field order. Comparison is
// strict string equality: "F" and "FEMALE" mismatch even though both are
// valid genders. Equal records return nil.
func Detect(a, b *records.CanonicalRecord) []Mismatch {
	var mismatches []Mismatch
	for _, field := range comparedFields {
		valueA, valueB := field.value(a), field.value(b)
		if valueA != valueB {
			mismatches = append(mismatches, Mismatch{
				Field:  field.label,
				ValueA: valueA,
				ValueB: valueB,
			})
		}
	}
	return mismatches
}

// Format renders an ordered mismatch sequence into the single display string
// used by the edit output, e.g.
//
//	Gender: [Genome: "F", IC: "FEMALE"], Sum Insured: [Genome: "300000", IC: "500000"]
//
// Empty input yields an empty string.
func Format(mismatches []Mismatch) string {
	if len(mismatches) == 0 {
		return ""
	}

	parts := make([]string, 0, len(mismatches))
	for _, m := range mismatches {
		parts = append(parts, fmt.Sprintf("%s: [Genome: %q, IC: %q]", m.Field, m.ValueA, m.ValueB))
	}
	return strings.Join(parts, ", ")
}
