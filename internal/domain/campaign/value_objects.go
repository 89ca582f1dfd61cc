package campaign

import (
	"strings"

	"vehicle-rental/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDiscount = errs.New("discount percentage must be between 0 and 100")
	ErrEmptyTitle      = errs.New("campaign title cannot be empty")
	ErrInvalidWindow   = errs.New("campaign validity window ends before it starts")
)

const MaxTitleLength = 255

var hundred = decimal.NewFromInt(100)

type DiscountPercentage struct {
	value decimal.Decimal
}

func NewDiscountPercentage(v decimal.Decimal) (DiscountPercentage, error) {
	if v.IsNegative() || v.GreaterThan(hundred) {
		return DiscountPercentage{}, ErrInvalidDiscount
	}
	return DiscountPercentage{value: v}, nil
}

func (d DiscountPercentage) Decimal() decimal.Decimal { return d.value }

func (d DiscountPercentage) Valid() bool {
	return !d.value.IsNegative() && !d.value.GreaterThan(hundred)
}

type Title string

func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyTitle
	}
	if len(s) > MaxTitleLength {
		s = s[:MaxTitleLength]
	}
	return Title(s), nil
}

func (t Title) String() string {
	return string(t)
}
