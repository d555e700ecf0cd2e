// Package topics holds the process-wide registry of sample topics.
//
// Topics are registered as a side effect of defining typed events, so any
// package that imports the message definitions sees the full set.
package topics

import (
	"fmt"
	"sort"
	"sync"
)

// Descriptor describes a single registered topic.
type Descriptor struct {
	// Name is the unique identifier for the topic (e.g. "laserscan").
	Name string
	// Description is a human-readable summary of what flows on the topic.
	Description string
	// Payload is the Go type name of the record published on the topic.
	Payload string
}

var (
	registry     = make(map[string]Descriptor)
	registryLock sync.RWMutex
)

// Register adds a topic to the registry. Registering the same name twice is
// a programming error and returns one.
func Register(d Descriptor) error {
	registryLock.Lock()
	defer registryLock.Unlock()

	if _, exists := registry[d.Name]; exists {
		return fmt.Errorf("topic already registered: %s", d.Name)
	}
	registry[d.Name] = d
	return nil
}

// MustRegister registers a topic and panics on conflict. Topic definitions
// live at package level, so a conflict should stop startup.
func MustRegister(d Descriptor) {
	if err := Register(d); err != nil {
		panic(err)
	}
}

// Get returns a topic descriptor by name.
func Get(name string) (Descriptor, bool) {
	registryLock.RLock()
	defer registryLock.RUnlock()

	d, exists := registry[name]
	return d, exists
}

// List returns all registered topics sorted by name.
func List() []Descriptor {
	registryLock.RLock()
	defer registryLock.RUnlock()

	result := make([]Descriptor, 0, len(registry))
	for _, d := range registry {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Names returns the sorted names of all registered topics.
func Names() []string {
	list := List()
	names := make([]string, len(list))
	for i, d := range list {
		names[i] = d.Name
	}
	return names
}

// ResetForTesting clears the registry. Tests only.
func ResetForTesting() {
	registryLock.Lock()
	defer registryLock.Unlock()

	registry = make(map[string]Descriptor)
}
