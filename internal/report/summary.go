package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/HazyCorp/numdemo/internal/util"
	"github.com/HazyCorp/numdemo/pkg/mathutil"
)

type Summary struct {
	Count              int            `json:"count"`
	Stats              mathutil.Stats `json:"stats"`
	StrictlyIncreasing bool           `json:"strictly_increasing"`
	Sum                int32          `json:"sum"`
	DoubledSum         int32          `json:"doubled_sum"`
	Rejected           []string       `json:"rejected"`
}

func Summarize(p Parsed) Summary {
	sum := mathutil.Sum(p.Values)

	return Summary{
		Count:              len(p.Values),
		Stats:              mathutil.ComputeStats(p.Values),
		StrictlyIncreasing: mathutil.IsStrictlyIncreasing(p.Values),
		Sum:                sum,
		DoubledSum:         mathutil.Multiply(sum, 2),
		Rejected:           p.Rejected,
	}
}

// WriteText prints the report lines. Write errors are ignored.
func WriteText(w io.Writer, s Summary) {
	increasing := "NO"
	if s.StrictlyIncreasing {
		increasing = "YES"
	}

	fmt.Fprintf(w, "Count: %d\n", s.Count)
	fmt.Fprintf(w, "Mean:  %s\n", formatFloat(s.Stats.Mean))
	fmt.Fprintf(w, "Min:   %s\n", formatFloat(s.Stats.Min))
	fmt.Fprintf(w, "Max:   %s\n", formatFloat(s.Stats.Max))
	fmt.Fprintf(w, "Strictly increasing: %s\n", increasing)
	fmt.Fprintf(w, "Sum via add(): %d\n", s.Sum)
	fmt.Fprintf(w, "Sum * 2 via multiply(): %d\n", s.DoubledSum)
}

func WriteJSON(w io.Writer, s Summary) error {
	if s.Rejected == nil {
		s.Rejected = []string{}
	}
	return util.WriteJsonTo(s, w)
}

// formatFloat matches the default ostream rendering of a double: six
// significant digits, shortest of fixed and exponent notation.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
