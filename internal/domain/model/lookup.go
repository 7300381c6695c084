package model

// LookupOutcome is the three-way result of asking the user directory for a
// record.
type LookupOutcome int

const (
	// LookupFound means the directory returned the user.
	LookupFound LookupOutcome = iota
	// LookupMissing means the directory answered that no such user exists.
	LookupMissing
	// LookupUnavailable covers every other outcome: timeout, refused
	// connection, unexpected status, unparseable body.
	LookupUnavailable
)

// UserLookup carries a lookup outcome plus the user when one was found.
type UserLookup struct {
	Outcome LookupOutcome
	User    *User
}

// FoundUser builds a successful lookup result.
func FoundUser(u *User) UserLookup { return UserLookup{Outcome: LookupFound, User: u} }

// MissingUser builds a lookup result for a user the directory does not know.
func MissingUser() UserLookup { return UserLookup{Outcome: LookupMissing} }

// DirectoryUnavailable builds a lookup result for a failed directory call.
func DirectoryUnavailable() UserLookup { return UserLookup{Outcome: LookupUnavailable} }

// EnrichedOrder is an order joined, at read time, with the lookup outcome
// for its owning user. Never persisted.
type EnrichedOrder struct {
	Order
	User UserLookup
}
