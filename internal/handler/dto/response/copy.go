package response

import (
	"vehicle-rental/internal/pkg/errs"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

var errUnexpectedType = errs.New("unexpected source type")

// Money is rendered with two decimal places everywhere.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

var copyOptions = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				d, ok := src.(decimal.Decimal)
				if !ok {
					return nil, errUnexpectedType
				}
				return money(d), nil
			},
		},
	},
}

// copyView maps a flat read view onto its response shape.
func copyView(dst, src any) error {
	if err := copier.CopyWithOption(dst, src, copyOptions); err != nil {
		return errs.Wrap(err, "failed to map response")
	}
	return nil
}
