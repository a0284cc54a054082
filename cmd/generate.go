package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cmmoran/uextern/pkg/action/generate"
)

func init() {
	rootCmd.AddCommand(NewGenerateCommand())
}

func NewGenerateCommand() *cobra.Command {
	flags := &optionFlags{}

	// generateCmd represents the uextern generate command
	var generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "generate externs",
		Long:  "Generate one Haxe extern per reflected class, struct and enum and record them in the manifest",
		RunE: func(c *cobra.Command, args []string) error {
			opts, err := flags.options(c)
			if err != nil {
				return err
			}
			_, err = generate.Generate(opts, logger.Named("generate"))
			return err
		},
	}
	flags.register(generateCmd.Flags())

	return generateCmd
}
