package reconcile_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/endorecon/pkg/reconcile"
	"github.com/agentstation/endorecon/pkg/records"
)

// newRecord builds a fully populated test record.
func newRecord(employeeID, name string) *records.CanonicalRecord {
	slab := 3
	return &records.CanonicalRecord{
		EmployeeID:        employeeID,
		Name:              name,
		Relationship:      "SELF",
		Gender:            "F",
		DateOfBirth:       "14/05/1990",
		CoverageStartDate: "01/04/2024",
		SumInsured:        "300000",
		SlabID:            &slab,
	}
}

// view builds a dataset view from records in order.
func view(source records.Source, recs ...*records.CanonicalRecord) *records.DatasetView {
	v := records.NewDatasetView(source)
	for _, r := range recs {
		v.Add(r)
	}
	return v
}

func TestModeSelection(t *testing.T) {
	engine := reconcile.New()

	insurer := view(records.SourceInsurer)
	roster := view(records.SourceRoster)

	// Nil or empty HR selects two-way mode.
	assert.Equal(t, reconcile.ModeTwoWay, engine.Classify(nil, insurer, roster).Mode)
	assert.Equal(t, reconcile.ModeTwoWay, engine.Classify(view(records.SourceHR), insurer, roster).Mode)

	hr := view(records.SourceHR, newRecord("E1", "Alice"))
	assert.Equal(t, reconcile.ModeThreeWay, engine.Classify(hr, insurer, roster).Mode)
}

func TestTwoWayDisjointSets(t *testing.T) {
	engine := reconcile.New()

	// Disjoint roster (m=3) and insurer (n=2): every roster record is
	// missing at the insurer, every insurer record is missing in the
	// roster, and there is nothing to edit.
	roster := view(records.SourceRoster,
		newRecord("R1", "Alice"), newRecord("R2", "Bob"), newRecord("R3", "Carol"))
	insurer := view(records.SourceInsurer,
		newRecord("I1", "Dan"), newRecord("I2", "Eve"))

	result := engine.Classify(nil, insurer, roster)

	assert.Len(t, result.ToOffboard, 3)
	assert.Len(t, result.ToAdd, 2)
	assert.Empty(t, result.ToEdit)

	for _, o := range result.ToOffboard {
		assert.True(t, o.RequiresConfirmation)
	}
}

func TestTwoWayMismatch(t *testing.T) {
	engine := reconcile.New()

	rosterRecord := newRecord("E1", "Alice")
	insurerRecord := newRecord("E1", "Alice")
	insurerRecord.Gender = "FEMALE"

	result := engine.Classify(nil,
		view(records.SourceInsurer, insurerRecord),
		view(records.SourceRoster, rosterRecord))

	require.Len(t, result.ToEdit, 1)
	require.Len(t, result.ToEdit[0].Mismatches, 1)

	m := result.ToEdit[0].Mismatches[0]
	assert.Equal(t, reconcile.LabelGender, m.Field)
	assert.Equal(t, "F", m.ValueA)
	assert.Equal(t, "FEMALE", m.ValueB)
}

func TestTwoWayIdenticalRecordsNoAction(t *testing.T) {
	engine := reconcile.New()

	result := engine.Classify(nil,
		view(records.SourceInsurer, newRecord("E1", "Alice")),
		view(records.SourceRoster, newRecord("E1", "Alice")))

	assert.True(t, result.IsEmpty())
}

func TestThreeWayAddWithSlab(t *testing.T) {
	engine := reconcile.New()

	// HR has E1/Alice with sum insured 300000; neither roster nor insurer
	// knows the key: classify as add, slab 3 attached.
	hr := view(records.SourceHR, newRecord("E1", "Alice"))

	result := engine.Classify(hr,
		view(records.SourceInsurer),
		view(records.SourceRoster))

	require.Len(t, result.ToAdd, 1)
	assert.Empty(t, result.ToEdit)
	assert.Empty(t, result.ToOffboard)

	added := result.ToAdd[0]
	assert.Equal(t, records.IdentityKey("E1_Alice"), added.Key())
	require.NotNil(t, added.SlabID)
	assert.Equal(t, 3, *added.SlabID)
}

func TestThreeWayEditWithoutMismatch(t *testing.T) {
	engine := reconcile.New()

	// HR and Roster both carry a matching E2/Bob; the insurer lacks the
	// key: edit with an empty mismatch list, queued for insurer sync.
	hr := view(records.SourceHR, newRecord("E2", "Bob"))
	roster := view(records.SourceRoster, newRecord("E2", "Bob"))

	result := engine.Classify(hr, view(records.SourceInsurer), roster)

	require.Len(t, result.ToEdit, 1)
	assert.Empty(t, result.ToEdit[0].Mismatches)
	assert.Empty(t, result.ToAdd)
	assert.Empty(t, result.ToOffboard)
}

func TestThreeWayEditWithMismatch(t *testing.T) {
	engine := reconcile.New()

	// All three datasets contain E3/Carol, but the insurer spells the
	// gender differently. Strict comparison flags exactly one mismatch
	// even though both values are semantically valid genders.
	hrRecord := newRecord("E3", "Carol")
	rosterRecord := newRecord("E3", "Carol")
	insurerRecord := newRecord("E3", "Carol")
	insurerRecord.Gender = "FEMALE"

	result := engine.Classify(
		view(records.SourceHR, hrRecord),
		view(records.SourceInsurer, insurerRecord),
		view(records.SourceRoster, rosterRecord))

	require.Len(t, result.ToEdit, 1)
	require.Len(t, result.ToEdit[0].Mismatches, 1)

	m := result.ToEdit[0].Mismatches[0]
	assert.Equal(t, reconcile.Mismatch{Field: reconcile.LabelGender, ValueA: "F", ValueB: "FEMALE"}, m)
}

func TestThreeWayOffboardBuckets(t *testing.T) {
	engine := reconcile.New()

	// E4 is in Roster and Insurer but left HR: offboard with confirmation.
	// E5 exists only at the insurer: offboard without confirmation.
	roster := view(records.SourceRoster, newRecord("E4", "Dan"))
	insurer := view(records.SourceInsurer, newRecord("E4", "Dan"), newRecord("E5", "Eve"))
	hr := view(records.SourceHR, newRecord("E6", "Frank"))

	result := engine.Classify(hr, insurer, roster)

	require.Len(t, result.ToOffboard, 2)
	assert.Equal(t, records.IdentityKey("E4_Dan"), result.ToOffboard[0].Record.Key())
	assert.True(t, result.ToOffboard[0].RequiresConfirmation)
	assert.Equal(t, records.IdentityKey("E5_Eve"), result.ToOffboard[1].Record.Key())
	assert.False(t, result.ToOffboard[1].RequiresConfirmation)
}

func TestThreeWayPartitionCompleteness(t *testing.T) {
	engine := reconcile.New()

	// One key in each of the seven possible presence combinations.
	hrOnly := newRecord("K1", "HrOnly")
	rosterOnly := newRecord("K2", "RosterOnly")
	insurerOnly := newRecord("K3", "InsurerOnly")
	hrRoster := newRecord("K4", "HrRoster")
	hrInsurer := newRecord("K5", "HrInsurer")
	rosterInsurer := newRecord("K6", "RosterInsurer")
	everywhere := newRecord("K7", "Everywhere")

	hr := view(records.SourceHR, hrOnly, hrRoster, hrInsurer, everywhere)
	roster := view(records.SourceRoster, rosterOnly, hrRoster, rosterInsurer, everywhere)
	insurer := view(records.SourceInsurer, insurerOnly, hrInsurer, rosterInsurer, everywhere)

	result := engine.Classify(hr, insurer, roster)

	classified := map[records.IdentityKey]int{}
	for _, r := range result.ToAdd {
		classified[r.Key()]++
	}
	for _, e := range result.ToEdit {
		classified[e.Record.Key()]++
	}
	for _, o := range result.ToOffboard {
		classified[o.Record.Key()]++
	}

	// Every key except the fully agreeing one lands in exactly one bucket.
	union := []records.IdentityKey{
		hrOnly.Key(), rosterOnly.Key(), insurerOnly.Key(),
		hrRoster.Key(), hrInsurer.Key(), rosterInsurer.Key(),
	}
	for _, key := range union {
		assert.Equal(t, 1, classified[key], "key %s should be classified exactly once", key)
	}
	assert.Zero(t, classified[everywhere.Key()], "a key matching everywhere needs no action")
}

func TestClassificationDeterministic(t *testing.T) {
	engine := reconcile.New()

	build := func() (*records.DatasetView, *records.DatasetView, *records.DatasetView) {
		hr := records.NewDatasetView(records.SourceHR)
		roster := records.NewDatasetView(records.SourceRoster)
		insurer := records.NewDatasetView(records.SourceInsurer)
		for i := 0; i < 20; i++ {
			r := newRecord(fmt.Sprintf("E%02d", i), "Employee")
			hr.Add(r)
			if i%2 == 0 {
				roster.Add(r)
			}
			if i%3 == 0 {
				changed := *r
				changed.SumInsured = "500000"
				insurer.Add(&changed)
			}
		}
		return hr, insurer, roster
	}

	hr1, insurer1, roster1 := build()
	hr2, insurer2, roster2 := build()

	first := engine.Classify(hr1, insurer1, roster1)
	second := engine.Classify(hr2, insurer2, roster2)

	assert.Equal(t, first, second)
}

func TestDetectDeterministicOrder(t *testing.T) {
	a := newRecord("E1", "Alice")
	b := newRecord("E1", "Alice")
	b.SumInsured = "500000"
	b.Relationship = "SPOUSE"
	b.Gender = "OTHER"

	first := reconcile.Detect(a, b)
	second := reconcile.Detect(a, b)

	require.Equal(t, first, second)

	// Mismatches follow the fixed field-comparison order, not input order.
	require.Len(t, first, 3)
	assert.Equal(t, reconcile.LabelRelationship, first[0].Field)
	assert.Equal(t, reconcile.LabelGender, first[1].Field)
	assert.Equal(t, reconcile.LabelSumInsured, first[2].Field)
}

func TestDetectExcludesContactFields(t *testing.T) {
	a := newRecord("E1", "Alice")
	b := newRecord("E1", "Alice")
	b.Mobile = "9876543210"
	b.Email = "different@example.com"

	assert.Empty(t, reconcile.Detect(a, b))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "", reconcile.Format(nil))
	assert.Equal(t, "", reconcile.Format([]reconcile.Mismatch{}))

	single := reconcile.Format([]reconcile.Mismatch{
		{Field: reconcile.LabelGender, ValueA: "F", ValueB: "FEMALE"},
	})
	assert.Equal(t, `Gender: [Genome: "F", IC: "FEMALE"]`, single)

	double := reconcile.Format([]reconcile.Mismatch{
		{Field: reconcile.LabelGender, ValueA: "F", ValueB: "FEMALE"},
		{Field: reconcile.LabelSumInsured, ValueA: "300000", ValueB: "500000"},
	})
	assert.Equal(t, `Gender: [Genome: "F", IC: "FEMALE"], Sum Insured: [Genome: "300000", IC: "500000"]`, double)
}

func TestClassificationSummary(t *testing.T) {
	engine := reconcile.New()

	empty := engine.Classify(nil, view(records.SourceInsurer), view(records.SourceRoster))
	assert.Equal(t, "Data recon completed (two-way): no changes needed", empty.String())

	hr := view(records.SourceHR, newRecord("E1", "Alice"))
	result := engine.Classify(hr, view(records.SourceInsurer), view(records.SourceRoster))
	assert.Equal(t, "Data recon completed (three-way): 1 to add", result.String())
}
