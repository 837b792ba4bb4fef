// Package api holds the wire types for the booking JSON API.
package api

import "github.com/shopspring/decimal"

func init() {
	// Money fields travel as bare JSON numbers, matching the original API.
	decimal.MarshalJSONWithoutQuotes = true
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success  bool   `json:"success"`
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type LogoutResponse struct {
	Success bool `json:"success"`
}

// FailureResponse is the flattened error payload: every business failure is
// reported as success=false with a message, not as an HTTP error status.
type FailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SeatBlock struct {
	ID          int    `json:"id"`
	CinemaName  string `json:"cinema_name"`
	MovieName   string `json:"movie_name"`
	ShowTime    string `json:"show_time"`
	TotalSeats  int    `json:"total_seats"`
	BookedSeats int    `json:"booked_seats"`
}

// BookRequest covers both shapes accepted by POST /api/book. A body carrying
// "cinema" is a single booking; a body carrying "admin_bookings" is an admin
// batch. Cinema is a pointer so the handler can tell "absent" from "empty".
type BookRequest struct {
	Cinema        *string         `json:"cinema"`
	Movie         string          `json:"movie"`
	Time          string          `json:"time"`
	Attendees     int             `json:"attendees"`
	Discount      decimal.Decimal `json:"discount"`
	AdminBookings []BookingItem   `json:"admin_bookings" validate:"omitempty,dive"`
}

type BookingItem struct {
	Cinema    string          `json:"cinema"`
	Movie     string          `json:"movie"`
	Time      string          `json:"time"`
	Attendees int             `json:"attendees" validate:"gte=1"`
	Discount  decimal.Decimal `json:"discount" validate:"decimal_not_negative"`
}

type BookingResult struct {
	BookingID  string          `json:"booking_id"`
	Cinema     string          `json:"cinema"`
	Movie      string          `json:"movie"`
	Time       string          `json:"time"`
	Attendees  int             `json:"attendees"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Discount   decimal.Decimal `json:"discount"`
	FinalPrice decimal.Decimal `json:"final_price"`
}

type BookingResponse struct {
	Success bool `json:"success"`
	BookingResult
}

type AdminBookingsResponse struct {
	Success  bool            `json:"success"`
	Bookings []BookingResult `json:"bookings"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"system_info"`
}
