package main

import (
	"context"
	"fmt"
	"newsletter/internal/auth"
	"newsletter/internal/config"
	"newsletter/pkg/domain"
	"newsletter/pkg/logger"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// userCommand groups administrator management subcommands. Users are only
// ever created out of band, there is no signup for administrators.
func userCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manages administrators",
	}
	cmd.AddCommand(userCreateCommand(cfg))

	return cmd
}

func userCreateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Creates an administrator able to log in and publish newsletters",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			ctx = logger.WithFields(ctx, zap.String("username", username))

			if n := utf8.RuneCountInString(password); n < auth.MinPasswordLength || n > auth.MaxPasswordLength {
				logger.Fatal(ctx, fmt.Sprintf("password must be between %d and %d characters long",
					auth.MinPasswordLength, auth.MaxPasswordLength))
			}

			hash, err := auth.NewHasher(authParams(cfg)).Hash(password)
			if err != nil {
				logger.Fatal(ctx, "could not hash password", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			user, err := strg.StoreUser(ctx, domain.User{Username: username, PasswordHash: hash})
			if err != nil {
				logger.Fatal(ctx, "could not store user", zap.Error(err))
			}
			logger.Info(ctx, "user created", zap.Stringer("userID", user.ID))
		},
	}

	cmd.Flags().String("username", "", "Administrator username")
	cmd.Flags().String("password", "", "Administrator password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
