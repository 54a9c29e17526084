// Package validate provides the per-field predicates and the aggregate
// record validator for canonical enrollment records. Each field check is a
// pure function over one raw value; the aggregate validator runs every
// applicable check and accumulates failures into a Result instead of
// mutating the record or stopping at the first error.
//
// Validation is advisory: a record with validation errors still flows
// through classification. The hosting workflow decides whether to surface
// or block on the accumulated messages.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/agentstation/endorecon/pkg/records"
)

var (
	// emailPattern matches a simple local@domain.tld shape.
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

	// mobilePattern matches exactly 10 digits with a restricted leading digit.
	mobilePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)

	// namePattern matches alphabetic names with spaces and dots.
	namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z .]*$`)
)

// minYear is the lower bound for plausible calendar dates.
const minYear = 1900

// Email checks the value against a simple local@domain.tld shape.
func Email(value string) bool {
	return emailPattern.MatchString(value)
}

// Mobile checks for exactly 10 digits with a leading digit in 6-9.
func Mobile(value string) bool {
	return mobilePattern.MatchString(value)
}

// Name checks for length >= 2 and an alphabetic-plus-space-and-dot shape.
func Name(value string) bool {
	return len(value) >= 2 && namePattern.MatchString(value)
}

// EmployeeID checks for a non-empty value.
func EmployeeID(value string) bool {
	return strings.TrimSpace(value) != ""
}

// CTC checks that the value parses as a positive number.
func CTC(value string) bool {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	return err == nil && n > 0
}

// Date checks that a canonical DD/MM/YYYY value splits into a plausible
// calendar date with a year in [1900, current year].
func Date(value string) bool {
	parts := strings.Split(value, "/")
	if len(parts) != 3 {
		return false
	}

	day, errD := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	year, errY := strconv.Atoi(parts[2])
	if errD != nil || errM != nil || errY != nil {
		return false
	}

	if year < minYear || year > time.Now().Year() {
		return false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}

	// Reject dates time.Date would normalize away, e.g. 30 February.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Day() == day && t.Month() == time.Month(month)
}

// Result is the outcome of validating one record. Errors accumulate; no
// individual field check aborts the rest.
type Result struct {
	Valid  bool
	Errors []string
	Record *records.CanonicalRecord
}

// Validator runs the aggregate record checks against immutable domain
// configuration.
type Validator struct {
	slabs *records.SlabTable
}

// New creates a Validator over the given slab table.
func New(slabs *records.SlabTable) *Validator {
	return &Validator{slabs: slabs}
}

// Record runs all applicable checks for a record from the given source.
// Roster records carry extra requirements: enrolment due date and user ID
// become mandatory, and CTC is checked when present.
func (v *Validator) Record(source records.Source, record *records.CanonicalRecord) Result {
	var errs []string

	if !EmployeeID(record.EmployeeID) {
		errs = append(errs, "employee ID is mandatory")
	}
	if !Name(record.Name) {
		errs = append(errs, fmt.Sprintf("name %q is invalid", record.Name))
	}

	if record.Relationship != "" && !records.IsValidRelationship(record.Relationship) {
		errs = append(errs, fmt.Sprintf("relationship %q is not an allowed value", record.Relationship))
	}
	if record.Gender != "" && !records.IsValidGender(record.Gender) {
		errs = append(errs, fmt.Sprintf("gender %q is not an allowed value", record.Gender))
	}

	if record.DateOfBirth != "" && !Date(record.DateOfBirth) {
		errs = append(errs, fmt.Sprintf("date of birth %q is not a plausible date", record.DateOfBirth))
	}
	if record.CoverageStartDate != "" && !Date(record.CoverageStartDate) {
		errs = append(errs, fmt.Sprintf("coverage start date %q is not a plausible date", record.CoverageStartDate))
	}

	// Mobile and email are optional, but a present-and-malformed value is
	// an error.
	if record.Mobile != "" && !Mobile(record.Mobile) {
		errs = append(errs, fmt.Sprintf("mobile %q must be 10 digits starting with 6-9", record.Mobile))
	}
	if record.Email != "" && !Email(record.Email) {
		errs = append(errs, fmt.Sprintf("email %q is invalid", record.Email))
	}

	if record.SumInsured != "" {
		if !v.slabs.Contains(record.SumInsured) {
			errs = append(errs, fmt.Sprintf("sum insured %q is not an allowed amount", record.SumInsured))
		}
		if !record.HasSlab() {
			errs = append(errs, "slab ID is mandatory")
		}
	}

	if source == records.SourceRoster {
		if record.EnrolmentDueDate == "" {
			errs = append(errs, "enrolment due date is mandatory")
		} else if !Date(record.EnrolmentDueDate) {
			errs = append(errs, fmt.Sprintf("enrolment due date %q is not a plausible date", record.EnrolmentDueDate))
		}
		if record.UserID == "" {
			errs = append(errs, "user ID is mandatory")
		}
		if record.CTC != "" && !CTC(record.CTC) {
			errs = append(errs, fmt.Sprintf("ctc %q must be a positive number", record.CTC))
		}
	}

	return Result{
		Valid:  len(errs) == 0,
		Errors: errs,
		Record: record,
	}
}

// View validates every record in a dataset view, in first-seen order.
func (v *Validator) View(view *records.DatasetView) []Result {
	results := make([]Result, 0, view.Len())
	for _, record := range view.List() {
		results = append(results, v.Record(view.Source(), record))
	}
	return results
}
