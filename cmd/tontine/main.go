package main

import (
	"context"
	"log/slog"
	"os"

	"tontine/config"
	"tontine/internal/delivery"
	"tontine/internal/delivery/http"
	"tontine/internal/delivery/http/middleware"
	"tontine/internal/delivery/http/router/handler"
	"tontine/internal/domain/service"
	"tontine/internal/domain/validation"
	"tontine/internal/infra/auth"
	"tontine/internal/infra/backend"
	"tontine/internal/infra/credstore"
	logs "tontine/internal/infra/log"
	"tontine/internal/infra/qrcode"
	"tontine/internal/infra/session"
	"tontine/internal/usecase"
	"tontine/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			restoreSession,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		credstore.New,
		session.NewEmptyStore,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			backend.New,
			func(c *backend.Client) service.AuthService { return c },
			func(c *backend.Client) service.TontineService { return c },
			func(s usecase.SessionUsecase) service.AccessTokenSource { return s },
			auth.NewJWTDecoder,
			newQRCodeService,
			newPasswordRules,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newPasswordRules builds the password rules from the configured policy
func newPasswordRules(cfg *config.Config) *validation.PasswordRules {
	if cfg.PasswordPolicy == nil {
		return validation.NewPasswordRules(validation.DefaultPolicy())
	}

	return validation.NewPasswordRules(validation.Policy{
		MinLength:         cfg.PasswordPolicy.MinLength,
		SpecialCharacters: cfg.PasswordPolicy.SpecialCharacters,
	})
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewAuthService,
			impl.NewPasswordFormService,
			impl.NewTontineService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewPasswordHandler,
			handler.NewTontineHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func restoreSession(ctx context.Context, sessionUC usecase.SessionUsecase) {
	sessionUC.Initialize(ctx)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
