package coord

import (
	"fmt"
	"sort"
)

var topologies = map[string]CoordSystem{
	"square8": Square8{},
	"hex6":    Hex6{},
}

// ByName returns the topology registered under name.
func ByName(name string) (CoordSystem, error) {
	sys, ok := topologies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopology, name)
	}
	return sys, nil
}

// Names lists the registered topology names in sorted order.
func Names() []string {
	names := make([]string, 0, len(topologies))
	for name := range topologies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
