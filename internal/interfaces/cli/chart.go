package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/siamhora/siamhora/internal/application/astro"
)

func newChartCmd(opts *rootOptions) *cobra.Command {
	var (
		timeOfDay string
		lat, lon  float64
	)

	cmd := &cobra.Command{
		Use:   "chart <date>",
		Short: "Compute a simulated birth chart",
		Example: `  horacli chart 27/10/2568 --time 14:30
  horacli chart 27/10/2568 --lat 13.75 --lon 100.5 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newLocalService()

			resp, err := svc.BuildChart(cmd.Context(), astro.ChartRequest{
				Date:      args[0],
				Time:      timeOfDay,
				Timezone:  opts.timezone,
				Latitude:  lat,
				Longitude: lon,
			})
			if err != nil {
				return err
			}

			if opts.output == "json" {
				return printJSON(cmd.OutOrStdout(), resp)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s (%s %s), %s zodiac via %s\n",
				resp.ResolvedGregorian, resp.Weekday, resp.WeekdayThai,
				resp.Selection.System, resp.Selection.Source)
			for _, p := range resp.Chart.Points {
				fmt.Fprintf(w, "  %-10s %7.2f°  %s\n", p.Body, p.Longitude, p.Sign)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&timeOfDay, "time", "", "birth time HH:MM (default midnight)")
	cmd.Flags().Float64Var(&lat, "lat", 0, "observer latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "observer longitude")
	return cmd
}

//Personal.AI order the ending
