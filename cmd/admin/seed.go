package main

import (
	"fmt"

	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/MKhiriev/go-store-locator/internal/service"
	"github.com/urfave/cli/v2"
)

func seedCmd(log *logger.Logger) *cli.Command {
	var cfgPath, dsn string
	return &cli.Command{
		Name:  "seed",
		Usage: "Load the sample districts, managers and locations; existing rows are skipped",
		Flags: configFlags(&cfgPath, &dsn),
		Action: func(ctx *cli.Context) error {
			return withServices(ctx, cfgPath, dsn, log, func(services *service.Services) error {
				report, err := services.SeedService.SeedSampleData(ctx.Context)
				if err != nil {
					return fmt.Errorf("error seeding sample data: %w", err)
				}
				return printJSON(ctx, report)
			})
		},
	}
}
