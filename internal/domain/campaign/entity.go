package campaign

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Campaign is a named percentage discount. The validity window is
// informational; eligibility is decided by whoever hands the campaign out.
type Campaign struct {
	id          uuid.UUID
	title       Title
	description string
	discount    DiscountPercentage
	validFrom   *time.Time
	validTo     *time.Time
}

func NewCampaign(
	id uuid.UUID,
	title string,
	description string,
	discountPercentage decimal.Decimal,
	validFrom, validTo *time.Time,
) (*Campaign, error) {
	t, err := NewTitle(title)
	if err != nil {
		return nil, err
	}

	discount, err := NewDiscountPercentage(discountPercentage)
	if err != nil {
		return nil, err
	}

	if validFrom != nil && validTo != nil && validTo.Before(*validFrom) {
		return nil, ErrInvalidWindow
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Campaign{
		id:          id,
		title:       t,
		description: description,
		discount:    discount,
		validFrom:   validFrom,
		validTo:     validTo,
	}, nil
}

// ReconstructCampaign skips validation so that a bad stored percentage is
// reported where it is applied.
func ReconstructCampaign(id uuid.UUID, title, description string, discountPercentage decimal.Decimal, validFrom, validTo *time.Time) *Campaign {
	return &Campaign{
		id:          id,
		title:       Title(title),
		description: description,
		discount:    DiscountPercentage{value: discountPercentage},
		validFrom:   validFrom,
		validTo:     validTo,
	}
}

func (c *Campaign) IsValidAt(t time.Time) bool {
	if c.validFrom != nil && t.Before(*c.validFrom) {
		return false
	}
	if c.validTo != nil && t.After(*c.validTo) {
		return false
	}
	return true
}

func (c *Campaign) ID() uuid.UUID                { return c.id }
func (c *Campaign) Title() Title                 { return c.title }
func (c *Campaign) Description() string          { return c.description }
func (c *Campaign) Discount() DiscountPercentage { return c.discount }
func (c *Campaign) ValidFrom() *time.Time        { return c.validFrom }
func (c *Campaign) ValidTo() *time.Time          { return c.validTo }
