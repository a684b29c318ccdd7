package domain

// User represents an identity record owning zero or more exercise entries.
type User struct {
	ID       string
	Username string
}
