package travel

import (
	"fmt"
	"strings"
)

// Algorithm selects how Route measures the best path.
type Algorithm int

const (
	// Shortest minimizes total miles (Dijkstra).
	Shortest Algorithm = iota
	// Fewest minimizes the number of legs (breadth-first search).
	Fewest
)

var algorithmNames = map[Algorithm]string{
	Shortest: "shortest",
	Fewest:   "fewest",
}

// ParseAlgorithm maps "shortest" or "fewest" (case-insensitive) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	for a, name := range algorithmNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q (want shortest or fewest)", ErrUnknownAlgorithm, s)
}

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if _, ok := algorithmNames[a]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v

	return nil
}

// Set implements pflag.Value.
func (a *Algorithm) Set(s string) error { return a.UnmarshalText([]byte(s)) }

// Type implements pflag.Value.
func (a *Algorithm) Type() string { return "algorithm" }
