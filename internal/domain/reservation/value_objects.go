package reservation

import (
	"fmt"
	"time"

	"vehicle-rental/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const Day = 24 * time.Hour

var (
	ErrInvalidInterval = errs.New("interval end must be after its start")
	ErrNegativeAmount  = errs.New("money cannot be negative")
)

// DateInterval is the half-open span [start, end).
type DateInterval struct {
	start time.Time
	end   time.Time
}

func NewDateInterval(start, end time.Time) (DateInterval, error) {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return DateInterval{}, ErrInvalidInterval
	}
	return DateInterval{start: start, end: end}, nil
}

func (i DateInterval) Start() time.Time { return i.start }
func (i DateInterval) End() time.Time   { return i.end }

// IsZero reports whether the interval was never constructed.
func (i DateInterval) IsZero() bool {
	return i.start.IsZero() && i.end.IsZero()
}

func (i DateInterval) Duration() time.Duration {
	return i.end.Sub(i.start)
}

// Overlaps reports whether both intervals share an instant. Touching
// boundaries do not count.
func (i DateInterval) Overlaps(other DateInterval) bool {
	return i.start.Before(other.end) && other.start.Before(i.end)
}

func (i DateInterval) ContainsInstant(t time.Time) bool {
	return !t.Before(i.start) && t.Before(i.end)
}

// DurationInWholeDays rounds up: any started day is billed as a full day.
func (i DateInterval) DurationInWholeDays() int {
	d := i.Duration()
	if d <= 0 {
		return 0
	}
	days := d / Day
	if d%Day != 0 {
		days++
	}
	return int(days)
}

func (i DateInterval) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", i.start.UTC().Format(time.RFC3339Nano), i.end.UTC().Format(time.RFC3339Nano))
}

func (i DateInterval) String() string {
	return i.ToTstzrange()
}

// Money is an exact, non-negative currency amount.
type Money struct {
	amount decimal.Decimal
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount}, nil
}

func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.Wrap(err, "parse money")
	}
	return NewMoney(d)
}

func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

func (m Money) Decimal() decimal.Decimal { return m.amount }

func (m Money) IsZero() bool { return m.amount.IsZero() }

func (m Money) Equal(other Money) bool { return m.amount.Equal(other.amount) }

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Times(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// Percent returns pct percent of m. Callers keep pct within [0,100].
func (m Money) Percent(pct decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(pct).Div(decimal.NewFromInt(100))}
}

func (m Money) Sub(other Money) Money {
	r := m.amount.Sub(other.amount)
	if r.IsNegative() {
		r = decimal.Zero
	}
	return Money{amount: r}
}

// String renders two decimal places. Arithmetic keeps full precision.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
