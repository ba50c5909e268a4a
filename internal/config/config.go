// Package config loads the interpreter's tunable settings: the jk
// acceleration window, the gg timeout, the acceleration cap, and the
// caret width clamp (spec.md §4.7, §4.8, §4.10). Everything else about
// the interpreter is fixed by the specification and not configurable.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Settings holds the interpreter's tunables, decoded from JSON with
// Defaults filling in anything the file omits.
type Settings struct {
	// GGTimeoutMS is how long a lone 'g' waits for a second 'g' (spec.md
	// §4.8).
	GGTimeoutMS int `json:"ggTimeoutMs"`

	// JKAccelWindowMS is the maximum interval between successive j/k
	// presses still counted as a repeat (spec.md §4.7).
	JKAccelWindowMS int `json:"jkAccelWindowMs"`

	// JKAccelCap caps the ramp term of the acceleration multiplier, which
	// is 1 + min(repeats/2, JKAccelCap) and so at most 1 + JKAccelCap
	// (spec.md §4.7).
	JKAccelCap uint32 `json:"jkAccelCap"`

	// CaretWidthMin and CaretWidthMax clamp the block caret width in
	// pixels (spec.md §4.10).
	CaretWidthMin float64 `json:"caretWidthMin"`
	CaretWidthMax float64 `json:"caretWidthMax"`
}

// Defaults returns the settings spec.md specifies when no configuration
// file overrides them.
func Defaults() Settings {
	return Settings{
		GGTimeoutMS:     500,
		JKAccelWindowMS: 150,
		JKAccelCap:      4,
		CaretWidthMin:   6,
		CaretWidthMax:   18,
	}
}

// GGTimeout returns the configured gg timeout as a time.Duration.
func (s Settings) GGTimeout() time.Duration {
	return time.Duration(s.GGTimeoutMS) * time.Millisecond
}

// JKAccelWindow returns the configured jk acceleration window as a
// time.Duration.
func (s Settings) JKAccelWindow() time.Duration {
	return time.Duration(s.JKAccelWindowMS) * time.Millisecond
}

// Load reads settings from path, starting from Defaults and decoding the
// file's fields on top of them. A missing file is not an error: it
// yields the defaults unchanged, the same "absent config is valid"
// convention as the teacher's settings layer.
func Load(path string) (Settings, error) {
	s := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &s); err != nil {
		return Defaults(), fmt.Errorf("config: parse %s: %w", path, err)
	}

	return s, nil
}
