// Package reconcile implements the core reconciliation engine: given
// canonical dataset views for the HR feed, the insurer feed, and the Genome
// active roster, it classifies every identity key in their union into the
// add / edit / offboard buckets needed to bring the roster into agreement.
//
// The engine runs in one of two modes. When an HR view is present it is
// authoritative for who should be enrolled (three-way mode); without one the
// roster is the operative source needing insurer confirmation (two-way
// mode). The mode is selected once per run from the non-empty views, and
// each mode dispatches to its own classification function.
//
// Classification is a pure, synchronous pass over in-memory data:
// re-running with identical inputs produces identical results in identical
// order.
package reconcile

import (
	"github.com/agentstation/endorecon/pkg/records"
)

// Mode identifies the reconciliation strategy selected for a run.
type Mode string

// String returns the string representation of a mode.
func (m Mode) String() string {
	return string(m)
}

const (
	// ModeTwoWay reconciles Insurer against Roster only.
	ModeTwoWay Mode = "two-way"

	// ModeThreeWay reconciles HR, Insurer, and Roster with HR as the
	// source of truth.
	ModeThreeWay Mode = "three-way"
)

// Engine classifies identity keys across dataset views.
type Engine interface {
	// Classify computes the add/edit/offboard classification for one run.
	// The HR view may be nil or empty, which selects two-way mode.
	Classify(hr, insurer, roster *records.DatasetView) *Classification
}

// engine is the default implementation of Engine.
type engine struct{}

// New creates a reconciliation Engine.
func New() Engine {
	return &engine{}
}

// Classify selects the mode from the non-empty views and dispatches to the
// matching classification function.
func (e *engine) Classify(hr, insurer, roster *records.DatasetView) *Classification {
	if hr == nil || hr.IsEmpty() {
		return e.classifyTwoWay(insurer, roster)
	}
	return e.classifyThreeWay(hr, insurer, roster)
}

// classifyTwoWay reconciles the roster against the insurer feed. Roster
// records the insurer has no trace of become offboard candidates requiring
// confirmation; insurer records absent from the roster become adds; keys in
// both sides are checked field by field.
func (e *engine) classifyTwoWay(insurer, roster *records.DatasetView) *Classification {
	result := newClassification(ModeTwoWay)

	// Roster pass, first-seen order: missing at insurer, then mismatches.
	for _, key := range roster.Keys() {
		rosterRecord, _ := roster.Get(key)
		insurerRecord, ok := insurer.Get(key)
		if !ok {
			result.ToOffboard = append(result.ToOffboard, Offboard{
				Record:               rosterRecord,
				RequiresConfirmation: true,
			})
			continue
		}
		if mismatches := Detect(rosterRecord, insurerRecord); len(mismatches) > 0 {
			result.ToEdit = append(result.ToEdit, Edit{
				Record:     rosterRecord,
				Mismatches: mismatches,
			})
		}
	}

	// Insurer pass: records missing in the roster.
	for _, key := range insurer.Keys() {
		if !roster.Has(key) {
			insurerRecord, _ := insurer.Get(key)
			result.ToAdd = append(result.ToAdd, insurerRecord)
		}
	}

	return result
}

// classifyThreeWay reconciles with HR as ground truth and the insurer as the
// system expected to lag-confirm.
func (e *engine) classifyThreeWay(hr, insurer, roster *records.DatasetView) *Classification {
	result := newClassification(ModeThreeWay)

	// HR pass, first-seen order.
	for _, key := range hr.Keys() {
		hrRecord, _ := hr.Get(key)
		inRoster := roster.Has(key)
		inInsurer := insurer.Has(key)

		switch {
		case !inRoster:
			// Absent from the roster: enroll, whether or not the insurer
			// already knows the person.
			result.ToAdd = append(result.ToAdd, hrRecord)
		case !inInsurer:
			// In HR and Roster but the insurer has not caught up: queue
			// for insurer sync, no field-level corrections.
			result.ToEdit = append(result.ToEdit, Edit{Record: hrRecord})
		default:
			insurerRecord, _ := insurer.Get(key)
			if mismatches := Detect(hrRecord, insurerRecord); len(mismatches) > 0 {
				result.ToEdit = append(result.ToEdit, Edit{
					Record:     hrRecord,
					Mismatches: mismatches,
				})
			}
		}
	}

	// Roster pass: people HR no longer lists but who are still active
	// downstream. These need a human to confirm the offboard.
	for _, key := range roster.Keys() {
		if !hr.Has(key) {
			rosterRecord, _ := roster.Get(key)
			result.ToOffboard = append(result.ToOffboard, Offboard{
				Record:               rosterRecord,
				RequiresConfirmation: true,
			})
		}
	}

	// Insurer pass: enrollments with no HR or roster trace at all.
	for _, key := range insurer.Keys() {
		if !hr.Has(key) && !roster.Has(key) {
			insurerRecord, _ := insurer.Get(key)
			result.ToOffboard = append(result.ToOffboard, Offboard{
				Record:               insurerRecord,
				RequiresConfirmation: false,
			})
		}
	}

	return result
}
