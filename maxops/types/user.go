// maxops/types/user.go
package types

type LoginRequest struct {
	Username string `json:"username"`
}

type CreateUserRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name,omitempty"`
}
