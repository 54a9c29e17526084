// Package records defines the canonical enrollment record types shared by
// every dataset the reconciler touches. A raw workbook row from any source
// (HR feed, insurer feed, or the Genome active roster) is normalized into a
// CanonicalRecord before comparison, so the engine only ever sees one shape.
package records

// Source identifies which external dataset a record was read from.
type Source string

// String returns the string representation of a source.
func (s Source) String() string {
	return string(s)
}

// The three named dataset sources.
const (
	SourceHR      Source = "hr_data"
	SourceInsurer Source = "insurer_data"
	SourceRoster  Source = "genome_active_roster"
)

// IdentityKey is the composite key used to match the same person across
// datasets. Two records with the same key are treated as the same person
// regardless of source; no secondary disambiguation exists.
type IdentityKey string

// String returns the string representation of an identity key.
func (k IdentityKey) String() string {
	return string(k)
}

// keySeparator joins employee ID and name into an IdentityKey. It is not
// expected to occur inside either field.
const keySeparator = "_"

// CanonicalRecord is the unit of comparison: one person's enrollment data in
// source-agnostic form. Optional fields are empty strings (or a nil SlabID)
// when the source did not populate them; absent values are never synthesized.
type CanonicalRecord struct {
	EmployeeID        string `yaml:"employee_id"`
	Name              string `yaml:"name"`
	Relationship      string `yaml:"relationship,omitempty"`
	Gender            string `yaml:"gender,omitempty"`
	DateOfBirth       string `yaml:"date_of_birth,omitempty"`
	CoverageStartDate string `yaml:"coverage_start_date,omitempty"`
	EnrolmentDueDate  string `yaml:"enrolment_due_date,omitempty"` // roster only
	SumInsured        string `yaml:"sum_insured,omitempty"`
	SlabID            *int   `yaml:"slab_id,omitempty"`
	Mobile            string `yaml:"mobile,omitempty"`
	Email             string `yaml:"email,omitempty"`
	CTC               string `yaml:"ctc,omitempty"`
	UserID            string `yaml:"user_id,omitempty"` // roster only
}

// Key derives the deterministic IdentityKey for a record.
func (r *CanonicalRecord) Key() IdentityKey {
	return IdentityKey(r.EmployeeID + keySeparator + r.Name)
}

// HasSlab reports whether the record carries a resolved slab.
func (r *CanonicalRecord) HasSlab() bool {
	return r.SlabID != nil
}
