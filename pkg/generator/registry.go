package generator

import (
	"fmt"
	"sort"

	"pkg.jsn.cam/ricochet/pkg/ricochet"
)

// Registry maps generator names to generator factory functions
var Registry = map[string]func() Generator{
	"bullets": func() Generator { return &BulletGenerator{} },
	"walls":   func() Generator { return &WallGenerator{} },
}

// Get returns a generator by name
func Get(name string) (Generator, error) {
	factory, exists := Registry[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ricochet.ErrUnknownGenerator, name)
	}
	return factory(), nil
}

// List returns all available generator names, sorted
func List() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
