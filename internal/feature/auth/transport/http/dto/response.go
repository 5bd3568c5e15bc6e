package dto

// MessageRes is the body for plain success and error responses.
type MessageRes struct {
	Message string `json:"message"`
}

// CurrentUserRes is the body returned by /api/users/current.
type CurrentUserRes struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
