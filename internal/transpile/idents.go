package transpile

// Binding describes the outcome of Idents.Bind.
type Binding struct {
	Raw     string
	Emitted string
	// Redeclared is set when Raw was already bound; the mapping is overwritten.
	Redeclared bool
	// Clash names a different raw lexeme already spelled as Emitted.
	Clash string
}

// Idents maps raw source lexemes to their emitted spelling for one run.
// The table is flat: there are no scopes and later bindings win.
type Idents struct {
	renamer Renamer
	byRaw   map[string]string
	owner   map[string]string // emitted -> raw
}

func NewIdents(r Renamer) *Idents {
	if r == nil {
		r = IdentityRenamer{}
	}
	return &Idents{
		renamer: r,
		byRaw:   make(map[string]string),
		owner:   make(map[string]string),
	}
}

// Bind records raw and returns its emitted spelling.
func (t *Idents) Bind(raw string) Binding {
	b := Binding{Raw: raw, Emitted: t.renamer.Rename(raw)}
	_, b.Redeclared = t.byRaw[raw]
	if other, ok := t.owner[b.Emitted]; ok && other != raw {
		b.Clash = other
	}
	t.byRaw[raw] = b.Emitted
	t.owner[b.Emitted] = raw
	return b
}

// Lookup returns the emitted spelling of a bound name.
func (t *Idents) Lookup(raw string) (string, bool) {
	e, ok := t.byRaw[raw]
	return e, ok
}

// Len returns the number of bound names.
func (t *Idents) Len() int {
	return len(t.byRaw)
}
