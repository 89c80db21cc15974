package kafka

import "fmt"

// Factory builds an Adapter.
type Factory func() Adapter

var drivers = map[string]Factory{}

// Register is called from each driver's init().
func Register(name string, f Factory) {
	drivers[name] = f
}

// NewAdapter returns a driver by name ("sarama").
func NewAdapter(name string) (Adapter, error) {
	if f, ok := drivers[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("kafka: unsupported driver %q", name)
}
