package shared

import (
	"vehicle-rental/internal/domain/campaign"
	"vehicle-rental/internal/domain/reservation"
	"vehicle-rental/internal/domain/review"
	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/pkg/errs"
)

// ToDomain rebuilds the vehicle aggregate with its reservations and their reviews.
func (s *VehicleSnapshot) ToDomain() (*vehicle.Vehicle, error) {
	held := make([]*reservation.Reservation, 0, len(s.Reservations))
	for i := range s.Reservations {
		r, err := s.Reservations[i].ToDomain()
		if err != nil {
			return nil, errs.Wrapf(err, "reservation %s", s.Reservations[i].ID)
		}
		held = append(held, r)
	}

	details := vehicle.Details{
		Brand:        s.Brand,
		Model:        s.Model,
		Year:         s.Year,
		Color:        s.Color,
		LicensePlate: s.LicensePlate,
		ImageURL:     s.ImageURL,
		Description:  s.Description,
		Status:       vehicle.Status(s.Status),
	}
	return vehicle.NewVehicle(s.ID, details, s.DailyPrice, held)
}

func (s *ReservationSnapshot) ToDomain() (*reservation.Reservation, error) {
	interval, err := reservation.NewDateInterval(s.StartsAt, s.EndsAt)
	if err != nil {
		return nil, err
	}
	cost, err := reservation.NewMoney(s.TotalCost)
	if err != nil {
		return nil, err
	}

	var rv *review.Review
	if s.Review != nil {
		rv = review.ReconstructReview(s.Review.ID, s.Review.UserID, s.VehicleID, s.ID, s.Review.Rating, s.Review.Comment, s.Review.CreatedAt)
	}

	return reservation.ReconstructReservation(s.ID, reservation.Params{
		VehicleID:         s.VehicleID,
		UserID:            s.UserID,
		Interval:          interval,
		TotalCost:         cost,
		CampaignID:        s.CampaignID,
		PickupLocationID:  s.PickupLocationID,
		DropoffLocationID: s.DropoffLocationID,
	}, rv, s.CreatedAt), nil
}

func (s *CampaignSnapshot) ToDomain() *campaign.Campaign {
	return campaign.ReconstructCampaign(s.ID, s.Title, s.Description, s.DiscountPercentage, s.ValidFrom, s.ValidTo)
}
