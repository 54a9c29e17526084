package records

// DatasetView is an ordered collection of canonical records belonging to
// exactly one source, keyed by IdentityKey. Keys preserve first-seen order so
// every classification pass over the view is reproducible between runs with
// identical input.
type DatasetView struct {
	source  Source
	keys    []IdentityKey
	records map[IdentityKey]*CanonicalRecord
}

// NewDatasetView creates an empty view for the given source.
func NewDatasetView(source Source) *DatasetView {
	return &DatasetView{
		source:  source,
		keys:    []IdentityKey{},
		records: make(map[IdentityKey]*CanonicalRecord),
	}
}

// Source returns the source this view was built from.
func (v *DatasetView) Source() Source {
	return v.source
}

// Add inserts a record into the view. A record whose key was already seen
// replaces the earlier one but keeps its original position.
func (v *DatasetView) Add(r *CanonicalRecord) {
	key := r.Key()
	if _, exists := v.records[key]; !exists {
		v.keys = append(v.keys, key)
	}
	v.records[key] = r
}

// Get returns the record for a key, if present.
func (v *DatasetView) Get(key IdentityKey) (*CanonicalRecord, bool) {
	r, ok := v.records[key]
	return r, ok
}

// Has reports whether the view contains a record for the key.
func (v *DatasetView) Has(key IdentityKey) bool {
	_, ok := v.records[key]
	return ok
}

// Keys returns the identity keys in first-seen order.
func (v *DatasetView) Keys() []IdentityKey {
	out := make([]IdentityKey, len(v.keys))
	copy(out, v.keys)
	return out
}

// List returns the records in first-seen key order.
func (v *DatasetView) List() []*CanonicalRecord {
	out := make([]*CanonicalRecord, 0, len(v.keys))
	for _, key := range v.keys {
		out = append(out, v.records[key])
	}
	return out
}

// Len returns the number of distinct keys in the view.
func (v *DatasetView) Len() int {
	return len(v.keys)
}

// IsEmpty reports whether the view holds no records.
func (v *DatasetView) IsEmpty() bool {
	return len(v.keys) == 0
}
