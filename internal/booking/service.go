// Package booking implements the lead-intake workflow: validation, reference
// code allocation and booking persistence, with decoupled notification
// dispatch.
package booking

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"time"
	"unicode/utf8"

	"ezpickup-backend/internal/apperr"
	"ezpickup-backend/internal/model"
	"ezpickup-backend/internal/refcode"
	"ezpickup-backend/internal/store"
)

// maxAllocateAttempts bounds the reference code retry loop. Collisions are
// rare until the 36^4 code space fills up, but the loop must not be
// unbounded.
const maxAllocateAttempts = 20

var (
	contactNumberRe = regexp.MustCompile(`^[6-9]\d{9}$`)
	pincodeRe       = regexp.MustCompile(`^\d{6}$`)
)

// Dispatcher hands a committed booking off for asynchronous notification.
// Dispatch must not block booking creation and its failures stay internal.
type Dispatcher interface {
	Dispatch(bookingID string)
}

// Service handles booking creation and lookup.
type Service struct {
	store    store.Store
	dispatch Dispatcher
	generate func() string
}

// NewService creates a booking service. dispatch may be nil to disable
// notifications.
func NewService(s store.Store, dispatch Dispatcher) *Service {
	return &Service{store: s, dispatch: dispatch, generate: refcode.Generate}
}

// CreateInput is a validated customer submission.
type CreateInput struct {
	CustomerName      string `json:"customerName"`
	ContactNumber     string `json:"contactNumber"`
	Email             string `json:"email"`
	Address           string `json:"address"`
	Pincode           string `json:"pincode"`
	CityID            string `json:"cityId"`
	ModelID           string `json:"modelId"`
	VariantID         string `json:"variantId"`
	ConditionID       string `json:"conditionId"`
	EstimatedPrice    int64  `json:"estimatedPrice"`
	PickupDate        string `json:"pickupDate"`
	PreferredTimeSlot string `json:"preferredTimeSlot"`
	Notes             string `json:"notes"`
}

// Create validates the input, allocates a unique reference code and commits
// the booking. Notification dispatch happens after commit and cannot fail
// the booking.
//
// Allocation is a single atomic insert per attempt: a unique-index violation
// on reference_code means another submission won the code, so a fresh code
// is generated and the insert retried, up to maxAllocateAttempts.
func (s *Service) Create(ctx context.Context, in CreateInput) (*model.Booking, error) {
	pickupDate, verr := validate(in)
	if verr != nil {
		return nil, verr
	}

	b := &model.Booking{
		CustomerName:      in.CustomerName,
		ContactNumber:     in.ContactNumber,
		Address:           in.Address,
		Pincode:           in.Pincode,
		CityID:            in.CityID,
		ModelID:           in.ModelID,
		ConditionID:       in.ConditionID,
		EstimatedPrice:    in.EstimatedPrice,
		Status:            model.StatusPending,
		PickupDate:        pickupDate,
		PreferredTimeSlot: in.PreferredTimeSlot,
	}
	if in.Email != "" {
		b.Email = &in.Email
	}
	if in.VariantID != "" {
		b.VariantID = &in.VariantID
	}
	if in.Notes != "" {
		b.Notes = &in.Notes
	}

	for attempt := 0; attempt < maxAllocateAttempts; attempt++ {
		b.ID = ""
		b.ReferenceCode = s.generate()

		err := s.store.CreateBooking(ctx, b)
		if errors.Is(err, apperr.ErrDuplicateCode) {
			continue
		}
		if err != nil {
			return nil, err
		}

		if s.dispatch != nil {
			s.dispatch.Dispatch(b.ID)
		}
		return b, nil
	}

	return nil, fmt.Errorf("%w after %d attempts", apperr.ErrCodeSpaceExhausted, maxAllocateAttempts)
}

// TrackByReferenceCode returns the booking for a customer-supplied code.
func (s *Service) TrackByReferenceCode(ctx context.Context, code string) (model.Booking, error) {
	if !refcode.Valid(code) {
		return model.Booking{}, apperr.ErrNotFound
	}
	return s.store.GetBookingByReferenceCode(ctx, refcode.Normalize(code))
}

func validate(in CreateInput) (time.Time, error) {
	fields := make(map[string]string)

	if n := utf8.RuneCountInString(in.CustomerName); n < 2 {
		fields["customerName"] = "name must be at least 2 characters"
	} else if n > 50 {
		fields["customerName"] = "name too long"
	}

	if !contactNumberRe.MatchString(in.ContactNumber) {
		fields["contactNumber"] = "must be a valid 10-digit Indian mobile number"
	}

	if in.Email != "" {
		if _, err := mail.ParseAddress(in.Email); err != nil {
			fields["email"] = "must be a valid email address"
		}
	}

	if n := utf8.RuneCountInString(in.Address); n < 10 {
		fields["address"] = "complete address required (minimum 10 characters)"
	} else if n > 200 {
		fields["address"] = "address too long"
	}

	if !pincodeRe.MatchString(in.Pincode) {
		fields["pincode"] = "must be a valid 6-digit pincode"
	}

	if in.CityID == "" {
		fields["cityId"] = "city is required"
	}
	if in.ModelID == "" {
		fields["modelId"] = "device model is required"
	}
	if in.ConditionID == "" {
		fields["conditionId"] = "device condition is required"
	}
	if in.PreferredTimeSlot == "" {
		fields["preferredTimeSlot"] = "preferred time slot is required"
	}
	if utf8.RuneCountInString(in.Notes) > 500 {
		fields["notes"] = "notes too long"
	}
	if in.EstimatedPrice < 0 {
		fields["estimatedPrice"] = "estimated price cannot be negative"
	}

	var pickupDate time.Time
	if in.PickupDate == "" {
		fields["pickupDate"] = "pickup date is required"
	} else {
		parsed, err := time.Parse("2006-01-02", in.PickupDate)
		if err != nil {
			fields["pickupDate"] = "pickup date must be YYYY-MM-DD"
		} else if today := truncateToDay(time.Now()); parsed.Before(today) {
			fields["pickupDate"] = "pickup date cannot be in the past"
		} else {
			pickupDate = parsed
		}
	}

	if len(fields) > 0 {
		return time.Time{}, apperr.NewValidation(fields)
	}
	return pickupDate, nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
