package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/siamhora/siamhora/internal/application/astro"
)

func newMatchCmd(opts *rootOptions) *cobra.Command {
	var time1, time2 string

	cmd := &cobra.Command{
		Use:   "match <date1> <date2>",
		Short: "Score the compatibility of two birth dates",
		Example: `  horacli match 27/10/2568 14/02/2540
  horacli match 27/10/2568 14/02/2540 --time1 08:00 -o json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newLocalService()

			resp, err := svc.ScorePair(cmd.Context(), astro.MatchRequest{
				Date1:    args[0],
				Time1:    time1,
				Date2:    args[1],
				Time2:    time2,
				Timezone: opts.timezone,
			})
			if err != nil {
				return err
			}

			if opts.output == "json" {
				return printJSON(cmd.OutOrStdout(), resp)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "score: %d/100\n", resp.Match.Score)
			for _, bm := range resp.Match.Bodies {
				fmt.Fprintf(w, "  %-6s %s vs %s: %d\n", bm.Body, bm.SignA, bm.SignB, bm.Points)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&time1, "time1", "", "first birth time HH:MM")
	cmd.Flags().StringVar(&time2, "time2", "", "second birth time HH:MM")
	return cmd
}

//Personal.AI order the ending
