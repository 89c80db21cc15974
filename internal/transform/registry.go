package transform

import (
	"fmt"
	"sort"
)

// Factory builds an unfitted step from its catalog parameters.
type Factory func(Params) (Transformer, error)

var registry = map[string]Factory{}

// Register is called from each kind's init().
func Register(kind string, f Factory) {
	registry[kind] = f
}

// New returns an unfitted step by kind ("pca", "standard_scaler", ...).
func New(kind string, p Params) (Transformer, error) {
	if f, ok := registry[kind]; ok {
		return f(p)
	}
	return nil, fmt.Errorf("transform: unsupported kind %q", kind)
}

// Restore builds a step of the state's kind and loads the fitted parameters.
func Restore(s State) (Transformer, error) {
	t, err := New(s.Kind, s.Params)
	if err != nil {
		return nil, err
	}
	if err := t.Restore(s); err != nil {
		return nil, err
	}
	return t, nil
}

func Kinds() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
