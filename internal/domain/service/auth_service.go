package service

import (
	"context"
	"encoding/json"
)

// Error codes the auth backend reports in change results.
const (
	RemoteCodeInvalidPassword = "INVALID_PASSWORD"
	RemoteCodeNetworkError    = "NETWORK_ERROR"
)

// AuthService performs the remote authentication calls.
// A returned error is a transport or decoding failure; business failures are reported
// through the result's Error field.
type AuthService interface {
	// Login authenticates a member with their identifier and password.
	Login(ctx context.Context, identifier, password string) (*LoginResult, error)

	// FirstPasswordChange replaces the server-issued temporary password.
	FirstPasswordChange(ctx context.Context, oldPassword, newPassword string) (*ChangeResult, error)

	// ChangePassword requests a voluntary change, applied after email confirmation.
	ChangePassword(ctx context.Context, oldPassword, newPassword string) (*ChangeResult, error)
}

// LoginResult is the backend's answer to a login.
type LoginResult struct {
	Success     bool         `json:"success"`
	AccessToken string       `json:"accessToken,omitempty"`
	FirstLogin  bool         `json:"firstLogin,omitempty"`
	Error       *RemoteError `json:"error,omitempty"`
}

// ChangeResult is the backend's answer to a password change.
type ChangeResult struct {
	Success bool         `json:"success"`
	Error   *RemoteError `json:"error,omitempty"`
}

// RemoteError is the structured error payload of the auth backend.
type RemoteError struct {
	Code    string       `json:"code,omitempty"`
	Message string       `json:"message,omitempty"`
	Err     *NestedError `json:"error,omitempty"`
}

// NestedError is the inner "error" member, sent either as a string or as {"message": "..."}.
type NestedError struct {
	Text    string
	Message string
}

// UnmarshalJSON accepts both shapes of the nested error.
func (e *NestedError) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		e.Text = text

		return nil
	}

	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	e.Message = obj.Message

	return nil
}

// MarshalJSON writes the object shape when a message is set, else the string shape.
func (e NestedError) MarshalJSON() ([]byte, error) {
	if e.Message != "" {
		return json.Marshal(struct {
			Message string `json:"message"`
		}{Message: e.Message})
	}

	return json.Marshal(e.Text)
}
