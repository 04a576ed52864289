package order

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"ordering/internal/pkg/errs"
)

const (
	MinSequence = 1
	MaxSequence = 9999

	numberDayLayout = "20060102"
)

var numberPattern = regexp.MustCompile(`^ORD-(\d{8})-(\d{4})$`)

// Number is the human readable order number, ORD-YYYYMMDD-NNNN.
// The date is the UTC creation day and NNNN the per-day sequence.
type Number struct {
	day      time.Time
	sequence int
}

// NewNumber builds the number for the sequence-th order of day.
func NewNumber(day time.Time, sequence int) (Number, error) {
	if sequence < MinSequence || sequence > MaxSequence {
		return Number{}, errs.NewValueIsOutOfRangeError("order sequence", sequence, MinSequence, MaxSequence)
	}
	return Number{day: TruncateDay(day), sequence: sequence}, nil
}

// ParseNumber parses the canonical string form.
func ParseNumber(s string) (Number, error) {
	m := numberPattern.FindStringSubmatch(s)
	if m == nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause(
			"order number",
			fmt.Errorf("%q does not match ORD-YYYYMMDD-NNNN", s),
		)
	}
	day, err := time.ParseInLocation(numberDayLayout, m[1], time.UTC)
	if err != nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number", err)
	}
	seq, _ := strconv.Atoi(m[2])
	return NewNumber(day, seq)
}

// TruncateDay returns midnight UTC of t's UTC date.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (n Number) Day() time.Time { return n.day }
func (n Number) Sequence() int  { return n.sequence }
func (n Number) IsZero() bool   { return n.sequence == 0 }

func (n Number) String() string {
	return fmt.Sprintf("ORD-%s-%04d", n.day.Format(numberDayLayout), n.sequence)
}
