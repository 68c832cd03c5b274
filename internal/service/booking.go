package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"localbistro/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrDateTimeRequired = errors.New("date and time must be selected")
	ErrContactRequired  = errors.New("name and phone are required")
	ErrInvalidDate      = errors.New("date is outside the booking window")
	ErrInvalidTimeSlot  = errors.New("time slot is not available")
	ErrInvalidSeating   = errors.New("seating must be indoor or outdoor")
	ErrAlreadyConfirmed = errors.New("booking is already confirmed")
	ErrWrongStep        = errors.New("action not allowed in the current step")
	ErrNotConfirmed     = errors.New("booking is not confirmed yet")
)

// BookingSelection carries step-one fields. Zero values leave the stored
// field unchanged so the client can send deltas.
type BookingSelection struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	PartySize int    `json:"party_size"`
	Seating   string `json:"seating"`
}

type BookingContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// BookingService runs the three-step table wizard:
// SelectingDateTime -> EnteringContact -> Confirmed. It is a pure local
// form-state machine; confirming only composes a message and emits the
// handoff, nothing is reserved anywhere.
type BookingService struct {
	sessions SessionStore
	handoff  handoffs
	now      func() time.Time
}

func NewBookingService(sessions SessionStore, phone string, publisher HandoffPublisher) *BookingService {
	return &BookingService{
		sessions: sessions,
		handoff:  handoffs{phone: phone, publisher: publisher},
		now:      time.Now,
	}
}

// Options lists the bookable domain: the next 14 calendar days starting
// today, the fixed slot list and both seating choices.
func (s *BookingService) Options() domain.BookingOptions {
	today := s.now()
	dates := make([]domain.DateOption, 0, domain.BookingWindowDays)
	for i := 0; i < domain.BookingWindowDays; i++ {
		day := today.AddDate(0, 0, i)
		dates = append(dates, domain.DateOption{
			Date:    day.Format("2006-01-02"),
			Weekday: day.Format("Mon"),
			Day:     day.Day(),
			Today:   i == 0,
		})
	}
	return domain.BookingOptions{
		Dates:   dates,
		Times:   domain.TimeSlots,
		Seating: []string{domain.SeatingIndoor, domain.SeatingOutdoor},
	}
}

func (s *BookingService) Start(ctx context.Context) (*domain.Booking, error) {
	booking := &domain.Booking{
		ID:        uuid.NewString(),
		Step:      domain.StepSelectingDateTime,
		PartySize: 2,
		Seating:   domain.SeatingIndoor,
	}
	if err := s.sessions.Put(ctx, bookingKey(booking.ID), booking); err != nil {
		return nil, fmt.Errorf("start booking: %w", err)
	}
	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.load(ctx, id)
}

func (s *BookingService) UpdateSelection(ctx context.Context, id string, sel BookingSelection) (*domain.Booking, error) {
	booking, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Step == domain.StepConfirmed {
		return nil, ErrAlreadyConfirmed
	}

	if sel.Date != "" {
		if !s.dateInWindow(sel.Date) {
			return nil, ErrInvalidDate
		}
		booking.Date = sel.Date
	}
	if sel.Time != "" {
		if !validTimeSlot(sel.Time) {
			return nil, ErrInvalidTimeSlot
		}
		booking.Time = sel.Time
	}
	if sel.PartySize != 0 {
		booking.PartySize = sel.PartySize
		if booking.PartySize < 1 {
			booking.PartySize = 1
		}
	}
	if sel.Seating != "" {
		if sel.Seating != domain.SeatingIndoor && sel.Seating != domain.SeatingOutdoor {
			return nil, ErrInvalidSeating
		}
		booking.Seating = sel.Seating
	}

	if err := s.save(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// Continue moves 1 -> 2 and is guarded by a selected date and time.
func (s *BookingService) Continue(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Step != domain.StepSelectingDateTime {
		return nil, ErrWrongStep
	}
	if booking.Date == "" || booking.Time == "" {
		return nil, ErrDateTimeRequired
	}
	booking.Step = domain.StepEnteringContact
	if err := s.save(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// Back returns 2 -> 1 unconditionally; selection values are kept.
func (s *BookingService) Back(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Step == domain.StepConfirmed {
		return nil, ErrAlreadyConfirmed
	}
	booking.Step = domain.StepSelectingDateTime
	if err := s.save(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) UpdateContact(ctx context.Context, id string, contact BookingContact) (*domain.Booking, error) {
	booking, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Step == domain.StepConfirmed {
		return nil, ErrAlreadyConfirmed
	}
	booking.Name = contact.Name
	booking.Phone = contact.Phone
	booking.Notes = contact.Notes
	if err := s.save(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// Confirm moves 2 -> 3, guarded by a non-empty name and phone. A fresh
// reference is generated on every confirmation; uniqueness is
// probabilistic, not guaranteed.
func (s *BookingService) Confirm(ctx context.Context, id string) (*domain.Booking, *domain.Handoff, error) {
	booking, err := s.load(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if booking.Step == domain.StepConfirmed {
		return nil, nil, ErrAlreadyConfirmed
	}
	if booking.Step != domain.StepEnteringContact {
		return nil, nil, ErrWrongStep
	}
	if strings.TrimSpace(booking.Name) == "" || strings.TrimSpace(booking.Phone) == "" {
		return nil, nil, ErrContactRequired
	}

	booking.BookingRef = newBookingRef()
	booking.Step = domain.StepConfirmed
	if err := s.save(ctx, booking); err != nil {
		return nil, nil, err
	}

	handoff := s.handoff.emit(ctx, domain.HandoffBooking, booking.BookingRef, confirmationMessage(booking))
	return booking, handoff, nil
}

// Restart discards the draft and returns to step one with initial values.
func (s *BookingService) Restart(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	reset := &domain.Booking{
		ID:        booking.ID,
		Step:      domain.StepSelectingDateTime,
		PartySize: 2,
		Seating:   domain.SeatingIndoor,
	}
	if err := s.save(ctx, reset); err != nil {
		return nil, err
	}
	return reset, nil
}

// Handoff rebuilds the confirmation message for a confirmed booking, for
// the QR endpoint and the "view on WhatsApp" action.
func (s *BookingService) Handoff(ctx context.Context, id string) (*domain.Handoff, error) {
	booking, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Step != domain.StepConfirmed {
		return nil, ErrNotConfirmed
	}
	message := confirmationMessage(booking)
	return &domain.Handoff{
		Message: message,
		Link:    WhatsAppLink(s.handoff.phone, message),
	}, nil
}

func (s *BookingService) load(ctx context.Context, id string) (*domain.Booking, error) {
	var booking domain.Booking
	if err := s.sessions.Get(ctx, bookingKey(id), &booking); err != nil {
		return nil, ErrBookingNotFound
	}
	return &booking, nil
}

func (s *BookingService) save(ctx context.Context, booking *domain.Booking) error {
	if err := s.sessions.Put(ctx, bookingKey(booking.ID), booking); err != nil {
		return fmt.Errorf("save booking: %w", err)
	}
	return nil
}

func (s *BookingService) dateInWindow(date string) bool {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	today := s.now()
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, domain.BookingWindowDays)
	target := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return !target.Before(start) && target.Before(end)
}

func validTimeSlot(slot string) bool {
	for _, t := range domain.TimeSlots {
		if t == slot {
			return true
		}
	}
	return false
}

func confirmationMessage(b *domain.Booking) string {
	longDate := b.Date
	if day, err := time.Parse("2006-01-02", b.Date); err == nil {
		longDate = day.Format("January 2, 2006")
	}
	notes := strings.TrimSpace(b.Notes)
	if notes == "" {
		notes = "None"
	}
	return fmt.Sprintf(
		"Hi! I'd like to make a reservation:\n\n"+
			"Name: %s\nPhone: %s\nDate: %s\nTime: %s\nParty Size: %d\nSeating: %s\nNotes: %s\n\n"+
			"Booking ID: %s",
		b.Name, b.Phone, longDate, b.Time, b.PartySize, b.Seating, notes, b.BookingRef)
}

const refAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func newBookingRef() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = refAlphabet[rand.Intn(len(refAlphabet))]
	}
	return "BK" + string(b)
}

func bookingKey(id string) string {
	return "booking:" + id
}
