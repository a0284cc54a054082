package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmmoran/uextern/pkg/action/check"
)

func init() {
	rootCmd.AddCommand(NewCheckCommand())
}

func NewCheckCommand() *cobra.Command {
	flags := &optionFlags{}

	// checkCmd represents the uextern check command
	var checkCmd = &cobra.Command{
		Use:   "check",
		Short: "verify generated externs",
		Long:  "Regenerate externs in memory and report files on disk that are changed, missing or stale",
		RunE: func(c *cobra.Command, args []string) error {
			opts, err := flags.options(c)
			if err != nil {
				return err
			}
			report, err := check.Check(opts, logger.Named("check"))
			if report != nil && !report.Empty() {
				fmt.Fprint(c.OutOrStdout(), report.String())
			}
			return err
		},
	}
	flags.register(checkCmd.Flags())

	return checkCmd
}
