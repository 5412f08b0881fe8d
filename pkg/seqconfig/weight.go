package seqconfig

import "github.com/rgranger/seqtrie/pkg/kernel"

// WeightFunction builds the kernel.WeightFunction named by
// KernelWeightKind, falling back to kernel.SumWeight for an unrecognized
// or empty kind.
func (c *Config) WeightFunction() kernel.WeightFunction {
	if c.KernelWeightKind == "exp" {
		return kernel.ExpWeight{Lambda: c.KernelLambda}
	}
	return kernel.SumWeight{}
}
