package scanner

import "fmt"

// Range is an inclusive block interval.
type Range struct {
	From uint64
	To   uint64
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.From, r.To)
}

// SplitRange partitions [from, to] into consecutive sub-ranges
// [f, min(f+maxSpan, to)]. A zero maxSpan yields the whole interval.
// It returns nil when from > to.
func SplitRange(from, to, maxSpan uint64) []Range {
	if from > to {
		return nil
	}
	if maxSpan == 0 {
		return []Range{{From: from, To: to}}
	}

	var out []Range
	for f := from; ; {
		end := to
		if to-f > maxSpan {
			end = f + maxSpan
		}

		out = append(out, Range{From: f, To: end})
		if end == to {
			return out
		}
		f = end + 1
	}
}
