package sizing

import (
	"fmt"
	"math"
	"strings"
)

// Traffic describes the users available to an experiment.
type Traffic struct {
	DailyVisitors float64   `json:"visitors" validate:"gte=0"`
	FlowPct       float64   `json:"trafficFlow" validate:"gt=0,lte=100"` // share of visitors entering the experiment
	Allocation    []float64 `json:"allocation" validate:"omitempty,dive,gt=0,lte=1"` // per-variant shares; empty means an equal split
}

// Effective returns the number of visitors per day that enter the experiment.
func (t Traffic) Effective() float64 {
	return t.DailyVisitors * (t.FlowPct / 100)
}

// Validate checks ranges and, when an allocation is given, that it has one
// share per variant and the shares sum to 1.
func (t Traffic) Validate(variants int) error {
	if err := paramsValidate.Struct(t); err != nil {
		return describeValidation(err)
	}
	if len(t.Allocation) == 0 {
		return nil
	}
	if len(t.Allocation) != variants {
		return fmt.Errorf("allocation: got %d shares for %d variants", len(t.Allocation), variants)
	}
	sum := 0.0
	for _, s := range t.Allocation {
		sum += s
	}
	if math.Abs(sum-1) > 1e-6 {
		return fmt.Errorf("allocation: shares sum to %g, want 1", sum)
	}
	return nil
}

// PerVariantDaily returns the daily users reaching the variant that fills
// slowest. With an unequal allocation that is the smallest share; otherwise
// traffic is split evenly.
func (t Traffic) PerVariantDaily(variants int) float64 {
	eff := t.Effective()
	if lowest, unequal := t.lowestShare(variants); unequal {
		return eff * lowest
	}
	return eff / float64(variants)
}

func (t Traffic) lowestShare(variants int) (lowest float64, unequal bool) {
	if len(t.Allocation) != variants || variants == 0 {
		return 0, false
	}
	lowest = 1.0
	for i, s := range t.Allocation {
		if i > 0 && s != t.Allocation[0] {
			unequal = true
		}
		if s < lowest {
			lowest = s
		}
	}
	return lowest, unequal
}

// Duration returns the number of whole days needed to collect n users per
// variant. It returns 0 when no traffic enters the experiment.
func Duration(n float64, variants int, t Traffic) int64 {
	if t.Effective() <= 0 {
		return 0
	}
	days := math.Ceil(n / t.PerVariantDaily(variants))
	if math.IsNaN(days) || math.IsInf(days, 0) {
		return 0
	}
	return int64(days)
}

// SampleSizeForDays returns the users per variant collected in the given
// number of days.
func SampleSizeForDays(days float64, variants int, t Traffic) float64 {
	return days * t.PerVariantDaily(variants)
}

// FormatDuration renders a day count the way experiment plans are usually
// read: days below a week, weeks and days below a month (30 days), and months
// plus either weeks or days beyond that.
func FormatDuration(days int64) string {
	switch {
	case days <= 0:
		return "0 days"
	case days < 7:
		return plural(days, "day")
	case days < 30:
		s := plural(days/7, "week")
		if rem := days % 7; rem > 0 {
			s += " and " + plural(rem, "day")
		}
		return s
	default:
		var b strings.Builder
		b.WriteString(plural(days/30, "month"))
		rem := days % 30
		if weeks := rem / 7; weeks > 0 {
			b.WriteString(" and " + plural(weeks, "week"))
		} else if d := rem % 7; d > 0 {
			b.WriteString(" and " + plural(d, "day"))
		}
		return b.String()
	}
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
