package records

// SlabTable maps sum-insured amounts to slab identifiers. It is constructed
// once at process start and passed by reference; no runtime mutation.
type SlabTable struct {
	amounts []string
	slabs   map[string]int
}

// defaultSlabs is the fixed enumerated sum-insured → slab mapping.
var defaultSlabs = []struct {
	amount string
	slab   int
}{
	{"200000", 1},
	{"250000", 2},
	{"300000", 3},
	{"500000", 4},
	{"600000", 5},
}

// DefaultSlabTable returns the fixed domain slab table.
func DefaultSlabTable() *SlabTable {
	t := &SlabTable{
		amounts: make([]string, 0, len(defaultSlabs)),
		slabs:   make(map[string]int, len(defaultSlabs)),
	}
	for _, entry := range defaultSlabs {
		t.amounts = append(t.amounts, entry.amount)
		t.slabs[entry.amount] = entry.slab
	}
	return t
}

// Resolve looks up the slab for a sum-insured amount.
func (t *SlabTable) Resolve(sumInsured string) (int, bool) {
	slab, ok := t.slabs[sumInsured]
	return slab, ok
}

// Contains reports whether the amount is a member of the allowed set.
func (t *SlabTable) Contains(sumInsured string) bool {
	_, ok := t.slabs[sumInsured]
	return ok
}

// Amounts returns the allowed sum-insured amounts in slab order.
func (t *SlabTable) Amounts() []string {
	out := make([]string, len(t.amounts))
	copy(out, t.amounts)
	return out
}
