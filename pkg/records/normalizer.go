package records

import (
	"strings"

	"github.com/agentstation/endorecon/pkg/dates"
)

// Row is a raw input row keyed by schema field names, as extracted from a
// workbook sheet.
type Row map[string]string

// Get returns the trimmed value for a field key, or empty string if absent.
func (r Row) Get(key string) string {
	return strings.TrimSpace(r[key])
}

// Normalizer maps raw rows into canonical records, resolving slabs and
// normalizing dates along the way. It holds only immutable configuration and
// is safe to share across runs.
type Normalizer struct {
	slabs *SlabTable
}

// NewNormalizer creates a Normalizer over the given slab table.
func NewNormalizer(slabs *SlabTable) *Normalizer {
	return &Normalizer{slabs: slabs}
}

// Slabs returns the slab table the normalizer resolves against.
func (n *Normalizer) Slabs() *SlabTable {
	return n.slabs
}

// Record maps one raw row from the given source into a CanonicalRecord.
// Fields the source does not populate stay empty.
func (n *Normalizer) Record(source Source, row Row) *CanonicalRecord {
	record := &CanonicalRecord{
		EmployeeID:        row.Get(FieldEmployeeID),
		Name:              row.Get(FieldName),
		Relationship:      row.Get(FieldRelationship),
		Gender:            row.Get(FieldGender),
		DateOfBirth:       dates.Normalize(row.Get(FieldDateOfBirth)),
		CoverageStartDate: dates.Normalize(row.Get(FieldCoverageStartDate)),
		SumInsured:        row.Get(FieldSumInsured),
		Mobile:            row.Get(FieldMobile),
		Email:             row.Get(FieldEmail),
		CTC:               row.Get(FieldCTC),
	}

	// Roster-only fields
	if source == SourceRoster {
		record.UserID = row.Get(FieldUserID)
		record.EnrolmentDueDate = dates.Normalize(row.Get(FieldEnrolmentDueDate))
	}

	// Only amounts present in the slab table resolve; anything else leaves
	// the slab unset for validation to flag.
	if record.SumInsured != "" {
		if slab, ok := n.slabs.Resolve(record.SumInsured); ok {
			record.SlabID = &slab
		}
	}

	return record
}

// View maps a full sheet of raw rows into a DatasetView, preserving row
// order as first-seen key order.
func (n *Normalizer) View(source Source, rows []Row) *DatasetView {
	view := NewDatasetView(source)
	for _, row := range rows {
		view.Add(n.Record(source, row))
	}
	return view
}
