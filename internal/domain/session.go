package domain

// Session is the request-scoped identity established by login. Booking
// handlers receive it explicitly instead of reading ambient state.
type Session struct {
	UserID   int
	Username string
	IsAdmin  bool
}
