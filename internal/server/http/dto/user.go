package dto

// UserResponse mirrors a directory record.
type UserResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
}

// CreateUserRequest describes the POST /users payload. Active defaults to
// true when omitted.
type CreateUserRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required"`
	Active *bool  `json:"active"`
}

// DeleteUserResponse acknowledges a deletion with the removed record.
type DeleteUserResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}
