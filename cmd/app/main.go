package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/osirris/internal"
	pkgconfig "github.com/starford/osirris/pkg/config"
)

var version = "dev"

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(configPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func resolvePage(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return fmt.Errorf("page is required, one of %v", internal.Pages)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return internal.Resolve(ctx, os.Stdout, cmd.Args().Get(0), cmd.Args().Get(1),
		internal.WithConfig(cfg),
		internal.WithLogOutput(os.Stderr),
	)
}

func exportSite(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return internal.Export(ctx, cmd.String("out"), int(cmd.Int("concurrency")),
		internal.WithConfig(cfg),
		internal.WithLogOutput(os.Stderr),
	)
}

func serveMCP(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return internal.ServeMCP(ctx,
		internal.WithConfig(cfg),
		internal.WithLogOutput(os.Stderr),
		internal.WithVersion(version),
	)
}

func main() {
	cmd := &cli.Command{
		Name:    "osirris",
		Usage:   "Content service for the Osirris site: CMS first, then content files, then defaults",
		Version: version,
		Action:  serve,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file (optional)",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API (default)",
				Action: serve,
			},
			{
				Name:      "resolve",
				Usage:     "Resolve one page and print its JSON",
				ArgsUsage: "<home|global|blog|post|media> [slug|category|type]",
				Action:    resolvePage,
			},
			{
				Name:  "export",
				Usage: "Write every page as static JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "out",
						Aliases:  []string{"o"},
						Usage:    "Output directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "concurrency",
						Usage: "Pages resolved at once",
						Value: 4,
					},
				},
				Action: exportSite,
			},
			{
				Name:   "mcp",
				Usage:  "Serve content tools over MCP stdio",
				Action: serveMCP,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
