// Package cli wires the weather command: normalize the arguments, build and
// send one request, check the resolved city, and print the report.
package cli

import (
	"io"
	"net/http"

	"github.com/spf13/cobra"

	"weather-report/config"
	"weather-report/datasource"
	apperrors "weather-report/errors"
	"weather-report/logger"
	"weather-report/query"
	"weather-report/report"
)

// App holds the dependencies of a single run
type App struct {
	Config *config.Config
	Source datasource.WeatherSource
	Out    io.Writer
	Style  report.Styler
}

// NewApp builds the default dependency set from cfg: a WeatherAPI.com
// source, and styling chosen from out and cfg.
func NewApp(cfg *config.Config, out io.Writer) *App {
	client := &http.Client{Timeout: cfg.Timeout}

	return &App{
		Config: cfg,
		Source: datasource.NewWeatherAPIProvider(cfg.APIKey, cfg.BaseURL, client),
		Out:    out,
		Style:  report.NewStyler(out, cfg.ColorDisabled()),
	}
}

// NewRootCommand returns the weather command bound to app
func NewRootCommand(app *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "weather <city> [days|scale] [scale|days]",
		Short: "Show current weather or a short forecast for a city",
		Long: `Show the current weather for a city, or a forecast of 2 to 5 days.

The optional day count (1-5) and scale (C or F) may be given in either order.
Out-of-range or invalid day counts fall back to a valid value.`,
		Example: `  weather Paris
  weather Tokyo 3 F
  weather Tokyo F 3`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 3 {
				return apperrors.Usage("expected <city> [days|scale] [scale|days]")
			}
			return nil
		},
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if plain {
				app.Style = report.PlainStyler{}
			}
			return app.Run(cmd, args)
		},
	}

	cmd.SetOut(app.Out)
	// Flags must come before the city so that "-3" reaches the day parser.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable colors and other terminal styling")

	return cmd
}

// Run executes one lookup. Errors are returned unprinted for the caller to report.
func (a *App) Run(cmd *cobra.Command, args []string) error {
	log := logger.GetLogger()

	q := query.Normalize(args)
	log.Debugw("Normalized query", "city", q.City, "days", q.Days, "scale", q.Scale.String())

	req := datasource.NewRequest(q)
	resp, err := a.Source.FetchWeather(cmd.Context(), req)
	if err != nil {
		return err
	}

	if err := report.CheckLocation(resp, q.City); err != nil {
		return err
	}

	if err := report.NewPresenter(a.Out, a.Style).Render(resp, q.Scale); err != nil {
		return apperrors.Unexpected(err, "failed to write report")
	}
	return nil
}
