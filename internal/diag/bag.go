package diag

// Bag is an append-only, ordered collection of diagnostics. Phases append
// through a Reporter; consumers read Items back in emission order.
type Bag struct {
	items []Diagnostic
	max   uint16
}

// NewBag creates a bag holding at most max diagnostics.
func NewBag(max int) *Bag {
	return &Bag{
		items: make([]Diagnostic, 0, max),
		max:   uint16(max),
	}
}

// Add appends a diagnostic, honoring the limit.
// Returns false when the diagnostic was not added (limit reached).
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() uint16 {
	return b.max
}

// HasErrors reports whether at least one diagnostic has Severity >= Error.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns a read-only view of the diagnostics in emission order.
// Do not modify the returned slice; it aliases the bag's internal array.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Messages returns just the message strings, in emission order.
func (b *Bag) Messages() []string {
	out := make([]string, 0, len(b.items))
	for i := range b.items {
		out = append(out, b.items[i].Message)
	}
	return out
}
