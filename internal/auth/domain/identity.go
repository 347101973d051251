package domain

// Identity is the authenticated caller as carried by the service's own
// access token. Admin comes from the Firebase custom claim verified at
// login, never from comparing email addresses.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Admin bool   `json:"admin"`
}
