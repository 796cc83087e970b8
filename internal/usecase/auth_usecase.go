package usecase

import (
	"context"

	"tontine/internal/domain/entity"
)

// SignInInput defines the data required for a member to sign in.
type SignInInput struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// SignInOutput describes the session opened by a successful sign-in.
type SignInOutput struct {
	User *entity.UserIdentity `json:"user"`
	// FirstLogin tells presentation to open the forced first change immediately.
	FirstLogin bool `json:"firstLogin"`
}

// AuthUsecase signs members in and out.
type AuthUsecase interface {
	SignIn(ctx context.Context, input SignInInput) (*SignInOutput, error)
	SignOut(ctx context.Context, showMessage bool) *entity.Notice
}
