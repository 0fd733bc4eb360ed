package diag

// Severity ranks a diagnostic; higher is worse.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]struct{ upper, lower string }{
	SevInfo:    {"INFO", "info"},
	SevWarning: {"WARNING", "warning"},
	SevError:   {"ERROR", "error"},
}

// Valid reports whether s is one of the declared levels.
func (s Severity) Valid() bool { return int(s) < len(severityNames) }

func (s Severity) String() string {
	if !s.Valid() {
		return "UNKNOWN"
	}
	return severityNames[s].upper
}

// Label is the lowercase form used by the one-line formats.
func (s Severity) Label() string {
	if !s.Valid() {
		return "unknown"
	}
	return severityNames[s].lower
}
