// Command createadmin provisions an admin account. Credentials are read from
// ADMIN_EMAIL and ADMIN_PASSWORD so they never land in shell history.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"storefront/cmd/bootstrap"
	"storefront/cmd/bootstrap/components"
	"storefront/internal/domain/user"
	"storefront/internal/usecase/commands"

	"go.uber.org/fx"
)

func createAdmin(lc fx.Lifecycle, shutdowner fx.Shutdowner, auth commands.AuthCommands, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			id, err := auth.CreateUser(ctx, commands.CreateUserInput{
				Email:    os.Getenv("ADMIN_EMAIL"),
				Password: os.Getenv("ADMIN_PASSWORD"),
				Role:     string(user.RoleAdmin),
			})
			if err != nil {
				return err
			}
			logger.Info("admin created", "user_id", id.String())
			return shutdowner.Shutdown()
		},
	})
}

func main() {
	app := fx.New(
		fx.NopLogger,
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		bootstrap.JWTModule,
		components.AuthOnlyModule,
		fx.Invoke(createAdmin),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		slog.Error("failed to create admin", "error", err)
		os.Exit(1)
	}
	<-app.Done()
	_ = app.Stop(context.Background())
}
