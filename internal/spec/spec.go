// Package spec holds the YAML shape of the pipeline catalog.
package spec

// StepSpec names one transform kind and its parameters.
type StepSpec struct {
	Kind       string `yaml:"kind"`
	Components int    `yaml:"components"`
	Seed       int64  `yaml:"seed"` // 0 = fresh seed per fit
}

// PipelineSpec is either a single transform or an ordered chain; exactly one
// of Transform and Chain is set.
type PipelineSpec struct {
	Name      string     `yaml:"name"`
	Transform *StepSpec  `yaml:"transform"`
	Chain     []StepSpec `yaml:"chain"`
}

func (p PipelineSpec) IsChain() bool { return p.Transform == nil }

// Steps returns the steps in application order.
func (p PipelineSpec) Steps() []StepSpec {
	if p.Transform != nil {
		return []StepSpec{*p.Transform}
	}
	return p.Chain
}

type Catalog struct {
	SchemaVersion string `yaml:"schema_version"`

	// Ordered; Fit builds pipelines and ListPipelines reports them in this order.
	Pipelines []PipelineSpec `yaml:"pipelines"`
}

func (c Catalog) Names() []string {
	out := make([]string, len(c.Pipelines))
	for i, p := range c.Pipelines {
		out[i] = p.Name
	}
	return out
}
