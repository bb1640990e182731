// internal/domain/session/entity.go
package session

// User represents the logged-in user of a client session. The login flow is
// an intentionally unauthenticated placeholder: any non-empty credentials
// succeed, and the email is derived from the username.
type User struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	IsLoggedIn bool   `json:"is_logged_in"`
}
