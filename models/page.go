package models

// UserPage is one window of the user directory listing together with the
// bookkeeping needed to render pagination links.
type UserPage struct {
	Users      []User
	Page       int
	PerPage    int
	TotalItems int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}
