package trace

import "time"

// Kind says what an event marks.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
	// KindError passes every level except off.
	KindError
)

// Scope is the granularity of an event; smaller is coarser.
type Scope uint8

const (
	// ScopeDriver covers whole CLI operations (transpile, build).
	ScopeDriver Scope = iota + 1
	// ScopePass covers lex and transpile passes.
	ScopePass
	// ScopeFile covers per-file work inside a directory run.
	ScopeFile
)

var (
	kindNames  = []string{"unknown", "begin", "end", "point", "error"}
	scopeNames = []string{"unknown", "driver", "pass", "file"}
)

func nameAt(names []string, i uint8) string {
	if int(i) < len(names) {
		return names[i]
	}
	return names[0]
}

func (k Kind) String() string  { return nameAt(kindNames, uint8(k)) }
func (s Scope) String() string { return nameAt(scopeNames, uint8(s)) }

// Event is one trace record. SpanID is zero for points.
type Event struct {
	Time     time.Time
	Seq      uint64 // global, monotonic
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for roots
	GID      uint64
	Name     string // "lex", "transpile", "file:src/main.lugha"
	Detail   string
	Extra    map[string]string
}
