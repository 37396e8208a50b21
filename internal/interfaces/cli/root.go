// Package cli implements the horacli command tree.  Every subcommand runs
// the core computations in-process; no server is required.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/siamhora/siamhora/internal/application/astro"
	"github.com/siamhora/siamhora/internal/domain/calendar"
	"github.com/siamhora/siamhora/internal/infrastructure/monitoring/logging"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	timezone string
	output   string // "json" | "text"
}

// NewRootCmd builds the horacli command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "horacli",
		Short: "Thai dual-calendar weekday and chart computations",
		Long: "horacli resolves Buddhist-Era and Gregorian dates to weekdays, " +
			"renders Thai date strings, and computes simulated birth charts, " +
			"transits, and compatibility scores without a running server.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if opts.output != "json" && opts.output != "text" {
				return fmt.Errorf("invalid --output %q; expected json|text", opts.output)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.timezone, "timezone", calendar.DefaultTimezone,
		"IANA timezone applied to date resolution")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "text",
		"output format: json or text")

	root.AddCommand(
		newWeekdayCmd(opts),
		newChartCmd(opts),
		newMatchCmd(opts),
	)

	return root
}

// newLocalService assembles the astro service for in-process use.  The
// selector runs without a geocoder, so system selection uses the timezone
// tiers only.
func newLocalService() *astro.Service {
	logger := logging.NewNopLogger()
	selector := astro.NewSystemSelector(nil, logger)
	return astro.NewService(selector, astro.Defaults{
		Timezone: calendar.DefaultTimezone,
		Latitude: 13.75, Longitude: 100.5,
	}, logger, nil)
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

//Personal.AI order the ending
