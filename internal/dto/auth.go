package dto

// UserInfo is what the authentication collaborator resolves a bearer token
// into. Only the email is consumed as the identity key.
type UserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
