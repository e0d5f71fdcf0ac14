package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	// LevelOff disables tracing.
	LevelOff    Level = iota
	LevelError        // only dumped on failure
	LevelPhase        // driver + file boundaries
	LevelDetail       // + pipeline passes
	LevelDebug        // everything
)

var levelNames = [...]string{
	LevelOff:    "off",
	LevelError:  "error",
	LevelPhase:  "phase",
	LevelDetail: "detail",
	LevelDebug:  "debug",
}

// finest scope each level lets through; LevelError feeds the crash ring
// and therefore keeps everything
var levelScope = [...]Scope{
	LevelOff:    0,
	LevelError:  ScopePass,
	LevelPhase:  ScopeFile,
	LevelDetail: ScopePass,
	LevelDebug:  ScopePass,
}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel converts a string to a Level; the empty string means off.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LevelOff, nil
	}
	for l, name := range levelNames {
		if name == s {
			return Level(l), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames[:], "|"))
}

// ShouldEmit reports whether events of scope pass at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	if int(l) >= len(levelScope) || scope == 0 {
		return false
	}
	return scope <= levelScope[l]
}
