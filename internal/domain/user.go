package domain

import "strings"

// Session is the authenticated-session snapshot kept in durable storage
// alongside the cart. The token is the upstream-issued JWT, treated as
// opaque here.
type Session struct {
	Token       string `json:"token"`
	UserID      int64  `json:"user_id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

type Customer struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Validate() error {
	if len(strings.TrimSpace(r.Username)) < 3 {
		return &ValidationError{Field: "username", Reason: "must be at least 3 characters"}
	}
	if len(r.Password) < 6 {
		return &ValidationError{Field: "password", Reason: "must be at least 6 characters"}
	}
	return nil
}

type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r RegisterRequest) Validate() error {
	if len(strings.TrimSpace(r.Username)) < 3 {
		return &ValidationError{Field: "username", Reason: "must be at least 3 characters"}
	}
	if !emailPattern.MatchString(r.Email) {
		return &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	if len(r.Password) < 8 {
		return &ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}
	return nil
}
