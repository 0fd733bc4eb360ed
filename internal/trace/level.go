package trace

import (
	"fmt"
	"slices"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota
	LevelError        // error points only
	LevelPhase        // driver and pass boundaries
	LevelDetail       // plus per-file events
	LevelDebug        // everything
)

var levelNames = []string{"off", "error", "phase", "detail", "debug"}

// widest scope whose spans and points pass at each level; 0 admits none
var levelScope = [...]Scope{
	LevelOff:    0,
	LevelError:  0,
	LevelPhase:  ScopePass,
	LevelDetail: ScopeFile,
	LevelDebug:  ^Scope(0),
}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

func ParseLevel(s string) (Level, error) {
	i := slices.Index(levelNames, strings.ToLower(strings.TrimSpace(s)))
	if i < 0 {
		return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames, "|"))
	}
	return Level(i), nil // #nosec G115 -- index of a five-element table
}

// Admits reports whether an event of kind and scope is written at level l.
func (l Level) Admits(kind Kind, scope Scope) bool {
	if l == LevelOff || int(l) >= len(levelScope) {
		return false
	}
	return kind == KindError || scope <= levelScope[l]
}
