package main

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-store-locator/internal/adapter"
	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/MKhiriev/go-store-locator/models"
	"github.com/urfave/cli/v2"
)

const defaultServerAddress = "http://localhost:8080"

func serverFlags(address *string, timeout *time.Duration) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "server",
			Aliases:     []string{"s"},
			Usage:       "Base URL of the store-locator server",
			EnvVars:     []string{"STORE_LOCATOR_SERVER"},
			Value:       defaultServerAddress,
			Destination: address,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Request timeout",
			Value:       10 * time.Second,
			Destination: timeout,
		},
	}
}

func emailFlag(email *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "email",
		Aliases:     []string{"e"},
		Usage:       "Email to sign in with",
		Destination: email,
		Required:    true,
	}
}

// signedIn signs in with the password from stdin, runs fn and signs out.
func signedIn(ctx *cli.Context, address string, timeout time.Duration, email string, log *logger.Logger, fn func(adapter.ServerAdapter) error) error {
	password, err := readPassword(ctx)
	if err != nil {
		return err
	}

	client, err := adapter.NewHTTPServerAdapter(address, timeout, log)
	if err != nil {
		return err
	}

	if _, err = client.SignIn(ctx.Context, email, password); err != nil {
		return fmt.Errorf("error signing in: %w", err)
	}
	defer func() {
		if err := client.SignOut(ctx.Context); err != nil {
			log.Err(err).Msg("error signing out")
		}
	}()

	return fn(client)
}

func signInCmd(log *logger.Logger) *cli.Command {
	var address, email string
	var timeout time.Duration
	return &cli.Command{
		Name:  "sign-in",
		Usage: "Check credentials against a running server and print the session account (password is read from stdin)",
		Flags: append(serverFlags(&address, &timeout), emailFlag(&email)),
		Action: func(ctx *cli.Context) error {
			return signedIn(ctx, address, timeout, email, log, func(client adapter.ServerAdapter) error {
				account, err := client.GetSession(ctx.Context)
				if err != nil {
					return fmt.Errorf("error getting session: %w", err)
				}
				if account == nil {
					return fmt.Errorf("%w: session cookie was not accepted", adapter.ErrUnauthorized)
				}
				return printJSON(ctx, account)
			})
		},
	}
}

func locationsCmd(log *logger.Logger) *cli.Command {
	var address, email, state, district string
	var timeout time.Duration
	var activeOnly bool
	return &cli.Command{
		Name:  "locations",
		Usage: "List locations from a running server (password is read from stdin)",
		Flags: append(serverFlags(&address, &timeout),
			emailFlag(&email),
			&cli.StringFlag{Name: "state", Usage: "Filter by state", Destination: &state},
			&cli.StringFlag{Name: "district", Usage: "Filter by district id", Destination: &district},
			&cli.BoolFlag{Name: "active", Usage: "Only active locations", Destination: &activeOnly},
		),
		Action: func(ctx *cli.Context) error {
			var filter models.LocationFilter
			if ctx.IsSet("active") {
				filter.Active = &activeOnly
			}
			if state != "" {
				filter.State = &state
			}
			if district != "" {
				filter.DistrictID = &district
			}

			return signedIn(ctx, address, timeout, email, log, func(client adapter.ServerAdapter) error {
				locations, err := client.ListLocations(ctx.Context, filter)
				if err != nil {
					return fmt.Errorf("error listing locations: %w", err)
				}
				return printJSON(ctx, locations)
			})
		},
	}
}

func healthCmd(log *logger.Logger) *cli.Command {
	var address string
	var timeout time.Duration
	return &cli.Command{
		Name:  "health",
		Usage: "Print the health report of a running server",
		Flags: serverFlags(&address, &timeout),
		Action: func(ctx *cli.Context) error {
			client, err := adapter.NewHTTPServerAdapter(address, timeout, log)
			if err != nil {
				return err
			}

			health, err := client.Health(ctx.Context)
			if err != nil {
				return err
			}
			return printJSON(ctx, health)
		},
	}
}
