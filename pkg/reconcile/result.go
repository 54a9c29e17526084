package reconcile

import (
	"fmt"
	"strings"

	"github.com/agentstation/endorecon/pkg/records"
)

// Edit is a record queued for the edit output, with zero or more field-level
// mismatch annotations. Empty Mismatches means the record is queued for
// insurer sync rather than field-level correction.
type Edit struct {
	Record     *records.CanonicalRecord
	Mismatches []Mismatch
}

// Offboard is a record queued for removal. RequiresConfirmation marks
// people who are still active downstream and need a human sign-off before
// the offboard is applied.
type Offboard struct {
	Record               *records.CanonicalRecord
	RequiresConfirmation bool
}

// Classification is the engine's sole output: the full add/edit/offboard
// partition for one run. It is recomputed from scratch on every run and has
// no existence outside a single invocation.
type Classification struct {
	Mode       Mode
	ToAdd      []*records.CanonicalRecord
	ToEdit     []Edit
	ToOffboard []Offboard
}

// newClassification creates an empty classification for the given mode.
func newClassification(mode Mode) *Classification {
	return &Classification{
		Mode:       mode,
		ToAdd:      []*records.CanonicalRecord{},
		ToEdit:     []Edit{},
		ToOffboard: []Offboard{},
	}
}

// Total returns the number of classified records across all buckets.
func (c *Classification) Total() int {
	return len(c.ToAdd) + len(c.ToEdit) + len(c.ToOffboard)
}

// IsEmpty reports whether no record needed any action.
func (c *Classification) IsEmpty() bool {
	return c.Total() == 0
}

// String returns a human-readable summary of per-bucket counts, used as the
// run outcome message.
func (c *Classification) String() string {
	if c.IsEmpty() {
		return fmt.Sprintf("Data recon completed (%s): no changes needed", c.Mode)
	}

	var parts []string
	if len(c.ToAdd) > 0 {
		parts = append(parts, fmt.Sprintf("%d to add", len(c.ToAdd)))
	}
	if len(c.ToEdit) > 0 {
		parts = append(parts, fmt.Sprintf("%d to edit", len(c.ToEdit)))
	}
	if len(c.ToOffboard) > 0 {
		parts = append(parts, fmt.Sprintf("%d to offboard", len(c.ToOffboard)))
	}
	return fmt.Sprintf("Data recon completed (%s): %s", c.Mode, strings.Join(parts, ", "))
}
