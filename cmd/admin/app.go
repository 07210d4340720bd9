package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/urfave/cli/v2"
)

var errMissingPassword = errors.New("missing password from stdin")

func newApp(stdin io.Reader, stdout io.Writer, log *logger.Logger) *cli.App {
	return &cli.App{
		Name:      "admin",
		Usage:     "Manage store-locator dashboard accounts",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stdout,
		Commands: []*cli.Command{
			createUserCmd(log),
			rotatePasswordCmd(log),
			hashPasswordCmd(log),
			signInCmd(log),
			locationsCmd(log),
			healthCmd(log),
			seedCmd(log),
		},
	}
}

// readPassword reads the first line of the app's stdin.
func readPassword(ctx *cli.Context) (string, error) {
	sc := bufio.NewScanner(ctx.App.Reader)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", errMissingPassword
	}

	password := strings.TrimSpace(sc.Text())
	if len(password) == 0 {
		return "", errMissingPassword
	}
	return password, nil
}

func printJSON(ctx *cli.Context, v any) error {
	enc := json.NewEncoder(ctx.App.Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}
