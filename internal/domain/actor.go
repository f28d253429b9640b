package domain

// Actor is the authenticated identity behind a request, as supplied by the
// token layer. Services trust it and gate every action on its Role.
type Actor struct {
	ID   string
	Name string
	Role Role
}
