package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/siamhora/siamhora/internal/domain/calendar"
)

// weekdayOutput is the JSON shape of the weekday subcommand.
type weekdayOutput struct {
	ResolvedGregorian  string `json:"resolved_gregorian"`
	YearBE             int    `json:"year_be"`
	Weekday            string `json:"weekday"`
	WeekdayThai        string `json:"weekday_thai"`
	WeekdayThaiCompact string `json:"weekday_thai_compact"`
	ThaiDate           string `json:"thai_date"`
}

func newWeekdayCmd(opts *rootOptions) *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "weekday <date>",
		Short: "Resolve a Thai or Gregorian date to its weekday",
		Example: `  horacli weekday 27/10/2568
  horacli weekday 2025-10-27 --style long -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			monthStyle := calendar.MonthStyleShort
			if style == "long" {
				monthStyle = calendar.MonthStyleLong
			}

			res, err := calendar.ResolveWithFallback(args[0], "", opts.timezone)
			if err != nil {
				return err
			}

			out := weekdayOutput{
				ResolvedGregorian:  res.Date.ISO(),
				YearBE:             res.Date.YearBE(),
				Weekday:            calendar.WeekdayEnglish(res.Weekday),
				WeekdayThai:        calendar.WeekdayThai(res.Weekday),
				WeekdayThaiCompact: calendar.WeekdayThaiCompact(res.Weekday),
				ThaiDate:           calendar.FormatThaiDate(res.Date, res.Weekday, monthStyle),
			}

			if opts.output == "json" {
				return printJSON(cmd.OutOrStdout(), out)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n%s\n",
				out.Weekday, out.WeekdayThai, out.ThaiDate)
			return nil
		},
	}

	cmd.Flags().StringVar(&style, "style", "short", "Thai month style: short or long")
	return cmd
}

//Personal.AI order the ending
