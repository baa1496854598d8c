package scenario

// Builtin returns the fixed list of named scenarios evaluated by the
// scenarios command. Each call returns a fresh slice.
func Builtin() []Scenario {
	return []Scenario{
		{
			Name: "Variant count = 2 (bonferroni)", Baseline: 0.05, MDE: 0.1,
			Alpha: 0.05, Power: 0.8, Variants: 2, Buffer: 0,
			TestType: "two-sided", CorrectionMethod: "bonferroni",
		},
		{
			Name: "Premium upsell", Baseline: 0.002, MDE: 0.25,
			Alpha: 0.1, Power: 0.8, Variants: 2, Buffer: 0,
			TestType: "two-sided", CorrectionMethod: "bonferroni",
		},
		{
			Name: "Checkout non-inferiority", Baseline: 0.10, MDE: -0.1,
			Alpha: 0.05, Power: 0.8, Variants: 2, Buffer: 0,
			TestType: "non-inferiority", CorrectionMethod: "none",
		},
		{
			Name: "Pricing page equivalence", Baseline: 0.1, MDE: 0.1,
			Alpha: 0.05, Power: 0.8, Variants: 2, Buffer: 0,
			TestType: "equivalence", CorrectionMethod: "none",
		},
		{
			Name: "Onboarding multivariate (sidak)", Baseline: 0.1, MDE: 0.1,
			Alpha: 0.05, Power: 0.8, Variants: 4, Buffer: 0,
			TestType: "two-sided", CorrectionMethod: "sidak",
		},
		{
			Name: "Onboarding multivariate (bonferroni)", Baseline: 0.1, MDE: 0.1,
			Alpha: 0.05, Power: 0.8, Variants: 4, Buffer: 0,
			TestType: "two-sided", CorrectionMethod: "bonferroni",
		},
		{
			Name: "Newsletter signup with buffer", Baseline: 5, MDE: 0.1,
			Alpha: 0.05, Power: 0.8, Variants: 2, Buffer: 10,
			TestType: "two-sided", CorrectionMethod: "none",
		},
		{
			Name: "Search CTR one-sided, absolute lift", Baseline: 0.05, MDE: 0.005, EffectMode: "absolute",
			Alpha: 0.05, Power: 0.8, Variants: 2, Buffer: 0,
			TestType: "one-sided", CorrectionMethod: "none",
		},
	}
}
