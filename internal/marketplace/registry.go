package marketplace

import (
	"fmt"
	"sync"
)

var (
	registry = make(map[string]PriceSource)
	mu       sync.RWMutex
)

func Register(name string, source PriceSource) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = source
}

func Get(name string) (PriceSource, error) {
	mu.RLock()
	defer mu.RUnlock()
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("marketplace %q not registered", name)
	}
	return s, nil
}

func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
