package diag

import (
	"cmp"
	"slices"

	"lugha/internal/source"
)

const bagCeiling = 0xFFFF

// Bag collects diagnostics up to a fixed limit; extra entries are dropped.
type Bag struct {
	items []Diagnostic
	limit int
}

// NewBag creates a bag holding at most limit diagnostics; limit <= 0 means the ceiling (65535).
func NewBag(limit int) *Bag {
	if limit <= 0 || limit > bagCeiling {
		limit = bagCeiling
	}
	return &Bag{items: make([]Diagnostic, 0, min(limit, 64)), limit: limit}
}

// Add возвращает false, когда лимит уже исчерпан.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.limit {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() uint16 {
	return uint16(b.limit) // #nosec G115 -- limit never exceeds bagCeiling
}

func (b *Bag) Len() int { return len(b.items) }

// Items is the bag's own slice; callers must not modify it.
func (b *Bag) Items() []Diagnostic { return b.items }

func (b *Bag) HasErrors() bool { return b.atLeast(SevError) }

func (b *Bag) HasWarnings() bool { return b.atLeast(SevWarning) }

func (b *Bag) atLeast(sev Severity) bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool { return d.Severity >= sev })
}

// Filter returns the diagnostics produced by origin, in insertion order.
func (b *Bag) Filter(origin Origin) []Diagnostic {
	var out []Diagnostic
	for _, d := range b.items {
		if d.Origin == origin {
			out = append(out, d)
		}
	}
	return out
}

// Merge appends everything from other, raising the limit when needed.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.limit = max(b.limit, min(len(b.items)+len(other.items), bagCeiling))
	for _, d := range other.items {
		b.Add(d)
	}
}

// Sort orders by file and span, then worst severity first, then code.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Start, y.Primary.Start),
			cmp.Compare(x.Primary.End, y.Primary.End),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}

// Dedup keeps the first diagnostic for each code and primary span.
func (b *Bag) Dedup() {
	type key struct {
		code Code
		span source.Span
	}
	seen := make(map[key]struct{}, len(b.items))
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool {
		k := key{d.Code, d.Primary}
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}
		return false
	})
}
