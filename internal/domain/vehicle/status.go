package vehicle

import (
	"strings"

	"vehicle-rental/internal/pkg/errs"
)

// Status is the fleet state an operator sets on a vehicle. Availability for a
// date range is decided by reservations, not by Status.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusRented      Status = "rented"
	StatusMaintenance Status = "maintenance"
)

var ErrInvalidStatus = errs.New("unknown vehicle status")

func Statuses() []Status {
	return []Status{StatusAvailable, StatusRented, StatusMaintenance}
}

// ParseStatus accepts any letter case, so "Maintenance" and "maintenance" match.
func ParseStatus(s string) (Status, error) {
	candidate := Status(strings.ToLower(strings.TrimSpace(s)))
	for _, st := range Statuses() {
		if st == candidate {
			return st, nil
		}
	}
	return "", errs.Wrapf(ErrInvalidStatus, "%q", s)
}

func (s Status) String() string {
	return string(s)
}
