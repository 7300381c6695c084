package model

// User represents a directory record owned by the user directory service.
// The order service never stores users; it only holds request-scoped copies
// returned by a lookup.
type User struct {
	ID     int64
	Name   string
	Email  string
	Active bool
}
