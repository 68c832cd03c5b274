package tests

import (
	"context"
	"strings"
	"testing"
	"time"

	"localbistro/internal/domain"
	"localbistro/internal/mocks"
	"localbistro/internal/service"
	"localbistro/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newBookingService(publisher service.HandoffPublisher) *service.BookingService {
	sessions := storage.NewMemorySessionStore(time.Minute)
	return service.NewBookingService(sessions, domain.Bistro.Phone, publisher)
}

func TestBookingService_Options(t *testing.T) {
	svc := newBookingService(nil)

	options := svc.Options()
	assert.Len(t, options.Dates, domain.BookingWindowDays)
	assert.True(t, options.Dates[0].Today)
	assert.False(t, options.Dates[1].Today)
	assert.Equal(t, domain.TimeSlots, options.Times)
	assert.Equal(t, []string{domain.SeatingIndoor, domain.SeatingOutdoor}, options.Seating)
}

func TestBookingService_Start(t *testing.T) {
	svc := newBookingService(nil)

	booking, err := svc.Start(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, domain.StepSelectingDateTime, booking.Step)
	assert.Equal(t, 2, booking.PartySize)
	assert.Equal(t, domain.SeatingIndoor, booking.Seating)
	assert.Empty(t, booking.BookingRef)
}

func TestBookingService_UpdateSelection(t *testing.T) {
	svc := newBookingService(nil)
	ctx := context.Background()
	today := svc.Options().Dates[0].Date

	booking, _ := svc.Start(ctx)

	tests := []struct {
		name          string
		selection     service.BookingSelection
		expectedError error
	}{
		{name: "valid_date_and_time", selection: service.BookingSelection{Date: today, Time: "7:00 PM"}},
		{name: "date_outside_window", selection: service.BookingSelection{Date: "2030-01-01"}, expectedError: service.ErrInvalidDate},
		{name: "unparseable_date", selection: service.BookingSelection{Date: "tomorrow"}, expectedError: service.ErrInvalidDate},
		{name: "unknown_time_slot", selection: service.BookingSelection{Time: "3:00 AM"}, expectedError: service.ErrInvalidTimeSlot},
		{name: "bad_seating", selection: service.BookingSelection{Seating: "rooftop"}, expectedError: service.ErrInvalidSeating},
		{name: "outdoor_seating", selection: service.BookingSelection{Seating: domain.SeatingOutdoor}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := svc.UpdateSelection(ctx, booking.ID, testCase.selection)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBookingService_UpdateSelection_PartySizeFloor(t *testing.T) {
	svc := newBookingService(nil)
	ctx := context.Background()

	booking, _ := svc.Start(ctx)
	updated, err := svc.UpdateSelection(ctx, booking.ID, service.BookingSelection{PartySize: -3})
	assert.NoError(t, err)
	assert.Equal(t, 1, updated.PartySize)

	// Zero means "leave unchanged".
	updated, err = svc.UpdateSelection(ctx, booking.ID, service.BookingSelection{Time: "6:00 PM"})
	assert.NoError(t, err)
	assert.Equal(t, 1, updated.PartySize)
}

func TestBookingService_Continue_RequiresDateAndTime(t *testing.T) {
	svc := newBookingService(nil)
	ctx := context.Background()
	today := svc.Options().Dates[0].Date

	booking, _ := svc.Start(ctx)

	_, err := svc.Continue(ctx, booking.ID)
	assert.ErrorIs(t, err, service.ErrDateTimeRequired)

	svc.UpdateSelection(ctx, booking.ID, service.BookingSelection{Date: today})
	_, err = svc.Continue(ctx, booking.ID)
	assert.ErrorIs(t, err, service.ErrDateTimeRequired)

	svc.UpdateSelection(ctx, booking.ID, service.BookingSelection{Time: "7:00 PM"})
	updated, err := svc.Continue(ctx, booking.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.StepEnteringContact, updated.Step)

	// Continuing again from step two is rejected.
	_, err = svc.Continue(ctx, booking.ID)
	assert.ErrorIs(t, err, service.ErrWrongStep)
}

func TestBookingService_Back_KeepsSelection(t *testing.T) {
	svc := newBookingService(nil)
	ctx := context.Background()
	today := svc.Options().Dates[0].Date

	booking, _ := svc.Start(ctx)
	svc.UpdateSelection(ctx, booking.ID, service.BookingSelection{Date: today, Time: "6:30 PM", PartySize: 4})
	svc.Continue(ctx, booking.ID)

	updated, err := svc.Back(ctx, booking.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.StepSelectingDateTime, updated.Step)
	assert.Equal(t, today, updated.Date)
	assert.Equal(t, "6:30 PM", updated.Time)
	assert.Equal(t, 4, updated.PartySize)
}

func TestBookingService_Confirm(t *testing.T) {
	publisher := mocks.NewHandoffPublisher(t)
	svc := newBookingService(publisher)
	ctx := context.Background()
	today := svc.Options().Dates[0].Date

	booking, _ := svc.Start(ctx)
	svc.UpdateSelection(ctx, booking.ID, service.BookingSelection{Date: today, Time: "7:00 PM", PartySize: 2})
	svc.Continue(ctx, booking.ID)

	// No contact yet.
	_, _, err := svc.Confirm(ctx, booking.ID)
	assert.ErrorIs(t, err, service.ErrContactRequired)

	svc.UpdateContact(ctx, booking.ID, service.BookingContact{Name: "Alice Smith", Phone: "5559876543"})

	publisher.On("Publish", mock.Anything, mock.AnythingOfType("domain.HandoffEvent")).
		Return(nil).Once()

	confirmed, handoff, err := svc.Confirm(ctx, booking.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.StepConfirmed, confirmed.Step)
	assert.True(t, strings.HasPrefix(confirmed.BookingRef, "BK"))
	assert.Len(t, confirmed.BookingRef, 11)

	longDate, _ := time.Parse("2006-01-02", today)
	assert.Contains(t, handoff.Message, "Hi! I'd like to make a reservation:")
	assert.Contains(t, handoff.Message, "Name: Alice Smith")
	assert.Contains(t, handoff.Message, "Date: "+longDate.Format("January 2, 2006"))
	assert.Contains(t, handoff.Message, "Notes: None")
	assert.Contains(t, handoff.Message, "Booking ID: "+confirmed.BookingRef)

	event := publisher.Calls[0].Arguments.Get(1).(domain.HandoffEvent)
	assert.Equal(t, domain.HandoffBooking, event.Type)
	assert.Equal(t, confirmed.BookingRef, event.Reference)
}

func TestBookingService_Confirm_Guards(t *testing.T) {
	svc := newBookingService(nil)
	ctx := context.Background()

	booking, _ := svc.Start(ctx)

	// Confirming from step one fails.
	_, _, err := svc.Confirm(ctx, booking.ID)
	assert.ErrorIs(t, err, service.ErrWrongStep)

	_, _, err = svc.Confirm(ctx, "missing")
	assert.ErrorIs(t, err, service.ErrBookingNotFound)
}

func TestBookingService_ConfirmedIsReadOnly(t *testing.T) {
	svc := newBookingService(nil)
	ctx := context.Background()
	today := svc.Options().Dates[0].Date

	booking, _ := svc.Start(ctx)
	svc.UpdateSelection(ctx, booking.ID, service.BookingSelection{Date: today, Time: "5:00 PM"})
	svc.Continue(ctx, booking.ID)
	svc.UpdateContact(ctx, booking.ID, service.BookingContact{Name: "Bob", Phone: "555"})
	svc.Confirm(ctx, booking.ID)

	_, err := svc.UpdateSelection(ctx, booking.ID, service.BookingSelection{Time: "6:00 PM"})
	assert.ErrorIs(t, err, service.ErrAlreadyConfirmed)
	_, err = svc.UpdateContact(ctx, booking.ID, service.BookingContact{Name: "Eve"})
	assert.ErrorIs(t, err, service.ErrAlreadyConfirmed)
	_, err = svc.Back(ctx, booking.ID)
	assert.ErrorIs(t, err, service.ErrAlreadyConfirmed)
	_, _, err = svc.Confirm(ctx, booking.ID)
	assert.ErrorIs(t, err, service.ErrAlreadyConfirmed)
}

func TestBookingService_RestartAndReconfirm(t *testing.T) {
	publisher := mocks.NewHandoffPublisher(t)
	svc := newBookingService(publisher)
	ctx := context.Background()
	today := svc.Options().Dates[0].Date

	publisher.On("Publish", mock.Anything, mock.AnythingOfType("domain.HandoffEvent")).
		Return(nil).Twice()

	booking, _ := svc.Start(ctx)
	svc.UpdateSelection(ctx, booking.ID, service.BookingSelection{Date: today, Time: "7:00 PM"})
	svc.Continue(ctx, booking.ID)
	svc.UpdateContact(ctx, booking.ID, service.BookingContact{Name: "Alice", Phone: "555"})
	first, _, _ := svc.Confirm(ctx, booking.ID)

	restarted, err := svc.Restart(ctx, booking.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.StepSelectingDateTime, restarted.Step)
	assert.Empty(t, restarted.Date)
	assert.Empty(t, restarted.Name)
	assert.Empty(t, restarted.BookingRef)
	assert.Equal(t, 2, restarted.PartySize)

	svc.UpdateSelection(ctx, booking.ID, service.BookingSelection{Date: today, Time: "8:00 PM"})
	svc.Continue(ctx, booking.ID)
	svc.UpdateContact(ctx, booking.ID, service.BookingContact{Name: "Alice", Phone: "555"})
	second, _, _ := svc.Confirm(ctx, booking.ID)

	assert.NotEqual(t, first.BookingRef, second.BookingRef)
}

func TestBookingService_Handoff(t *testing.T) {
	svc := newBookingService(nil)
	ctx := context.Background()
	today := svc.Options().Dates[0].Date

	booking, _ := svc.Start(ctx)

	_, err := svc.Handoff(ctx, booking.ID)
	assert.ErrorIs(t, err, service.ErrNotConfirmed)

	svc.UpdateSelection(ctx, booking.ID, service.BookingSelection{Date: today, Time: "7:00 PM"})
	svc.Continue(ctx, booking.ID)
	svc.UpdateContact(ctx, booking.ID, service.BookingContact{Name: "Alice", Phone: "555", Notes: "Window seat"})
	confirmed, firstHandoff, _ := svc.Confirm(ctx, booking.ID)

	handoff, err := svc.Handoff(ctx, booking.ID)
	assert.NoError(t, err)
	assert.Equal(t, firstHandoff.Message, handoff.Message)
	assert.Contains(t, handoff.Message, "Notes: Window seat")
	assert.Contains(t, handoff.Message, confirmed.BookingRef)
}
