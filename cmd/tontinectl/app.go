package main

import (
	"context"
	"log/slog"

	"tontine/config"
	"tontine/internal/domain/validation"
	"tontine/internal/infra/auth"
	"tontine/internal/infra/backend"
	"tontine/internal/infra/credstore"
	logs "tontine/internal/infra/log"
	"tontine/internal/infra/qrcode"
	"tontine/internal/infra/session"
	"tontine/internal/usecase"
	"tontine/internal/usecase/impl"

	"github.com/spf13/cobra"
)

// app holds the usecases one command drives. Every invocation starts signed out.
type app struct {
	session  usecase.SessionUsecase
	auth     usecase.AuthUsecase
	forms    usecase.PasswordFormUsecase
	tontines usecase.TontineUsecase
	logger   *slog.Logger

	close func() error
}

// Close releases the credential store.
func (a *app) Close() error {
	if a.close == nil {
		return nil
	}

	return a.close()
}

// openApp builds the app for cmd. Replaced in tests.
var openApp = func(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logs.NewWithWriter(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return nil, err
	}

	return newApp(cmd.Context(), cfg, logger)
}

func loadConfig() (*config.Config, error) {
	if configDir != "" {
		return config.Load(configDir)
	}

	return config.New()
}

func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	store, err := credstore.Open(ctx, cfg.CredentialStore.BucketURL, logger)
	if err != nil {
		return nil, err
	}

	sessionUC := impl.NewSessionService(session.NewEmptyStore(logger), logger)
	sessionUC.Initialize(ctx)

	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.UserAgent, cfg.Backend.Timeout, sessionUC, logger)
	rules := validation.NewPasswordRules(validation.Policy{
		MinLength:         cfg.PasswordPolicy.MinLength,
		SpecialCharacters: cfg.PasswordPolicy.SpecialCharacters,
	})
	qrcodes := qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)

	return &app{
		session:  sessionUC,
		auth:     impl.NewAuthService(client, auth.NewJWTDecoder(cfg), store, sessionUC, logger),
		forms:    impl.NewPasswordFormService(store, client, sessionUC, rules, logger),
		tontines: impl.NewTontineService(client, qrcodes, sessionUC, logger),
		logger:   logger,
		close:    store.Close,
	}, nil
}
