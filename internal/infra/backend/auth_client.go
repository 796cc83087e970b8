package backend

import (
	"context"
	"log/slog"
	"net/http"

	"tontine/internal/domain/service"
	"tontine/internal/errors"
)

const (
	pathLogin               = "/auth/login"
	pathFirstPasswordChange = "/auth/first-password-change"
	pathChangePassword      = "/auth/change-password"
)

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type passwordChangeRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// Login authenticates a member.
func (c *Client) Login(ctx context.Context, identifier, password string) (*service.LoginResult, error) {
	status, data, err := c.do(ctx, http.MethodPost, pathLogin, loginRequest{Identifier: identifier, Password: password}, false)
	if err != nil {
		return nil, err
	}

	var result service.LoginResult
	if err := decodeResult(status, data, &result); err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		result.Success = false
	}
	result.Error = withStatusFallback(result.Success, result.Error, status)

	c.logger.Info("Login answered", slog.Bool("success", result.Success), slog.Int("status", status))

	return &result, nil
}

// FirstPasswordChange replaces the temporary password issued with the account.
func (c *Client) FirstPasswordChange(ctx context.Context, oldPassword, newPassword string) (*service.ChangeResult, error) {
	return c.changePassword(ctx, pathFirstPasswordChange, oldPassword, newPassword)
}

// ChangePassword requests a voluntary change that the member confirms by email.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) (*service.ChangeResult, error) {
	return c.changePassword(ctx, pathChangePassword, oldPassword, newPassword)
}

func (c *Client) changePassword(ctx context.Context, path, oldPassword, newPassword string) (*service.ChangeResult, error) {
	payload := passwordChangeRequest{OldPassword: oldPassword, NewPassword: newPassword}
	status, data, err := c.do(ctx, http.MethodPost, path, payload, true)
	if err != nil {
		return nil, err
	}

	var result service.ChangeResult
	if err := decodeResult(status, data, &result); err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		result.Success = false
	}
	result.Error = withStatusFallback(result.Success, result.Error, status)

	c.logger.Info("Password change answered",
		slog.String("path", path),
		slog.Bool("success", result.Success),
		slog.Int("status", status),
	)

	return &result, nil
}

// decodeResult parses an auth result. Error statuses with an empty body yield an empty result.
func decodeResult(status int, data []byte, out any) error {
	if len(data) == 0 {
		if isSuccess(status) {
			return errors.New("JSON parsing failed: empty backend response")
		}

		return nil
	}

	return decode(data, out)
}

// withStatusFallback gives a failed result without an error payload a message naming the status.
func withStatusFallback(success bool, remote *service.RemoteError, status int) *service.RemoteError {
	if success || remote != nil {
		return remote
	}

	return &service.RemoteError{Message: http.StatusText(status)}
}
