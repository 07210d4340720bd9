// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-store-locator/internal/config"
	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/MKhiriev/go-store-locator/internal/service"
	"github.com/MKhiriev/go-store-locator/internal/store"
	"github.com/urfave/cli/v2"
)

// configFlags are shared by the commands that need the server secret.
func configFlags(cfgPath, dsn *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to a JSON config file",
			Destination: cfgPath,
		},
		&cli.StringFlag{
			Name:        "dsn",
			Aliases:     []string{"d"},
			Usage:       "Database DSN, overrides STORAGE_DB_DATABASE_URI",
			Destination: dsn,
		},
	}
}

func loadConfig(cfgPath, dsn string) (*config.StructuredConfig, error) {
	return config.GetConfigWithOverrides(&config.StructuredConfig{
		JSONFilePath: cfgPath,
		Storage:      config.Storage{DB: config.DB{DSN: dsn}},
	})
}

// withServices runs fn with the services backed by the configured database
// and closes the connection afterwards.
func withServices(ctx *cli.Context, cfgPath, dsn string, log *logger.Logger, fn func(*service.Services) error) error {
	cfg, err := loadConfig(cfgPath, dsn)
	if err != nil {
		return err
	}

	storages, err := store.NewStorages(ctx.Context, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	return fn(services)
}

func withAuthService(ctx *cli.Context, cfgPath, dsn string, log *logger.Logger, fn func(service.AuthService) error) error {
	return withServices(ctx, cfgPath, dsn, log, func(services *service.Services) error {
		return fn(services.AuthService)
	})
}

func createUserCmd(log *logger.Logger) *cli.Command {
	var cfgPath, dsn, email, name string
	return &cli.Command{
		Name:  "create-user",
		Usage: "Create an account with a password credential (password is read from stdin)",
		Flags: append(configFlags(&cfgPath, &dsn),
			&cli.StringFlag{
				Name:        "email",
				Aliases:     []string{"e"},
				Usage:       "Email of the new account",
				Destination: &email,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "name",
				Aliases:     []string{"n"},
				Usage:       "Display name of the new account",
				Destination: &name,
			},
		),
		Action: func(ctx *cli.Context) error {
			password, err := readPassword(ctx)
			if err != nil {
				return err
			}

			return withAuthService(ctx, cfgPath, dsn, log, func(auth service.AuthService) error {
				account, err := auth.CreateCredential(ctx.Context, email, password, name)
				if err != nil {
					return fmt.Errorf("error creating account: %w", err)
				}

				log.Info().Str("account_id", account.ID).Str("email", account.Email).Msg("account created")
				return printJSON(ctx, account)
			})
		},
	}
}

func rotatePasswordCmd(log *logger.Logger) *cli.Command {
	var cfgPath, dsn, email string
	return &cli.Command{
		Name:  "rotate-password",
		Usage: "Replace the password of an account and revoke its sessions (password is read from stdin)",
		Flags: append(configFlags(&cfgPath, &dsn),
			&cli.StringFlag{
				Name:        "email",
				Aliases:     []string{"e"},
				Usage:       "Email of the account",
				Destination: &email,
				Required:    true,
			},
		),
		Action: func(ctx *cli.Context) error {
			password, err := readPassword(ctx)
			if err != nil {
				return err
			}

			return withAuthService(ctx, cfgPath, dsn, log, func(auth service.AuthService) error {
				if err := auth.RotatePassword(ctx.Context, email, password); err != nil {
					return fmt.Errorf("error rotating password: %w", err)
				}

				log.Info().Str("email", email).Msg("password rotated")
				_, err := fmt.Fprintln(ctx.App.Writer, "password rotated")
				return err
			})
		},
	}
}

func hashPasswordCmd(log *logger.Logger) *cli.Command {
	var cfgPath, dsn string
	return &cli.Command{
		Name:  "hash-password",
		Usage: "Print a salt and digest for a password read from stdin",
		Flags: configFlags(&cfgPath, &dsn),
		Action: func(ctx *cli.Context) error {
			password, err := readPassword(ctx)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cfgPath, dsn)
			if err != nil {
				return err
			}

			hasher, err := service.NewPasswordHasher(cfg.App.PasswordAlgorithm, cfg.App.Secret)
			if err != nil {
				return err
			}

			salt, err := service.GenerateSalt()
			if err != nil {
				return err
			}

			log.Debug().Str("algorithm", hasher.Algorithm()).Msg("password hashed")
			return printJSON(ctx, map[string]string{
				"algorithm": hasher.Algorithm(),
				"salt":      salt,
				"digest":    hasher.Hash(password, salt),
			})
		},
	}
}
