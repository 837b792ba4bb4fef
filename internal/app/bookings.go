package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/abscinema/booking-api/api"
	"github.com/abscinema/booking-api/internal/domain"
)

// Book serves POST /api/book. The endpoint is shared: a body carrying
// "cinema" is a single booking, a body carrying "admin_bookings" is an admin
// batch, anything else is rejected.
func (app *Application) Book(w http.ResponseWriter, r *http.Request) {
	var input api.BookRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	sess, ok := app.sessionFromRequest(r)
	if !ok {
		app.failResponse(w, r, ErrNotLoggedIn)
		return
	}

	switch {
	case input.Cinema != nil:
		app.createBooking(w, r, sess, input)
	case input.AdminBookings != nil:
		app.createAdminBookings(w, r, sess, input.AdminBookings)
	default:
		app.failResponse(w, r, ErrInvalidFormat)
	}
}

func (app *Application) createBooking(w http.ResponseWriter, r *http.Request, sess domain.Session, input api.BookRequest) {
	logger := app.logger

	item := api.BookingItem{
		Cinema:    *input.Cinema,
		Movie:     input.Movie,
		Time:      input.Time,
		Attendees: input.Attendees,
		Discount:  input.Discount,
	}

	err := app.validator.Struct(item)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	block, err := app.inventoryRepo.GetAvailability(r.Context(), item.Cinema, item.Movie, item.Time)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.failResponse(w, r, ErrInvalidShowKey)
		default:
			app.storeErrorResponse(w, r, err)
		}

		return
	}

	// The capacity check runs here, after the read and before the consume
	// below. Nothing makes the pair atomic: two concurrent requests can both
	// pass this line and jointly overbook the block. Keeping that window open
	// is the whole point of this demo.
	//
	// Admin sessions skip the check entirely, yet the stored row is still a
	// regular booking (is_admin_booking stays false). The original behaves
	// the same way, so the quirk is preserved.
	if block.Remaining() < item.Attendees && !sess.IsAdmin {
		app.failResponse(w, r, ErrNotEnoughSeats)
		return
	}

	err = app.inventoryRepo.Consume(r.Context(), item.Cinema, item.Movie, item.Time, item.Attendees)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	total, final := domain.Price(item.Attendees, item.Discount)

	booking := &domain.Booking{
		BookingID:  domain.NewBookingID(time.Now()),
		UserID:     sess.UserID,
		CinemaName: item.Cinema,
		MovieName:  item.Movie,
		ShowTime:   item.Time,
		Attendees:  item.Attendees,
		TotalPrice: total,
		Discount:   item.Discount,
		FinalPrice: final,
	}

	err = app.bookingRepo.Create(r.Context(), booking)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	logger.Info("booking created",
		"booking_id", booking.BookingID,
		"user_id", sess.UserID,
		"attendees", item.Attendees,
	)

	resp := api.BookingResponse{
		Success:       true,
		BookingResult: toBookingResult(booking),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// createAdminBookings records a batch of bookings without ever touching the
// inventory: admin batches never consume seats and never show up in the
// availability numbers. The whole batch is persisted atomically.
func (app *Application) createAdminBookings(w http.ResponseWriter, r *http.Request, sess domain.Session, items []api.BookingItem) {
	if !sess.IsAdmin {
		app.failResponse(w, r, ErrNotAuthorized)
		return
	}

	for _, item := range items {
		if err := app.validator.Struct(item); err != nil {
			app.failedValidationResponse(w, r, err)
			return
		}
	}

	bookings := make([]*domain.Booking, 0, len(items))

	for i, item := range items {
		total, final := domain.Price(item.Attendees, item.Discount)

		bookings = append(bookings, &domain.Booking{
			BookingID:      domain.NewAdminBookingID(time.Now(), i),
			UserID:         sess.UserID,
			CinemaName:     item.Cinema,
			MovieName:      item.Movie,
			ShowTime:       item.Time,
			Attendees:      item.Attendees,
			TotalPrice:     total,
			Discount:       item.Discount,
			FinalPrice:     final,
			IsAdminBooking: true,
		})
	}

	err := app.bookingRepo.CreateBatch(r.Context(), bookings)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	app.logger.Info("admin batch created", "user_id", sess.UserID, "count", len(bookings))

	results := make([]api.BookingResult, len(bookings))
	for i, booking := range bookings {
		results[i] = toBookingResult(booking)
	}

	resp := api.AdminBookingsResponse{
		Success:  true,
		Bookings: results,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CinemaData(w http.ResponseWriter, r *http.Request) {
	blocks, err := app.inventoryRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.SeatBlock, len(blocks))
	for i, block := range blocks {
		resp[i] = api.SeatBlock{
			ID:          block.ID,
			CinemaName:  block.CinemaName,
			MovieName:   block.MovieName,
			ShowTime:    block.ShowTime,
			TotalSeats:  block.TotalSeats,
			BookedSeats: block.BookedSeats,
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toBookingResult(booking *domain.Booking) api.BookingResult {
	return api.BookingResult{
		BookingID:  booking.BookingID,
		Cinema:     booking.CinemaName,
		Movie:      booking.MovieName,
		Time:       booking.ShowTime,
		Attendees:  booking.Attendees,
		TotalPrice: booking.TotalPrice,
		Discount:   booking.Discount,
		FinalPrice: booking.FinalPrice,
	}
}
