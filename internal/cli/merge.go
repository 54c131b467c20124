package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) mergeCommand() *cobra.Command {
	var (
		outFile string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "merge <this> <other>",
		Short: "Merge two schemas into one",
		Long: `Merge <other> into <this> and print the result. Types present on one side are
copied; for types on both sides the fields of <other> win and interfaces and
union members are combined. Merging types of different kinds is an error.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateSchemaFormat(format); err != nil {
				return err
			}
			merged, err := c.pipeline.Merge(cmd.Context(), splitPaths(args[0]), splitPaths(args[1]))
			if err != nil {
				return err
			}
			return writeSchema(cmd.OutOrStdout(), outFile, merged, format)
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write the merged schema to file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", formatSDL, "output format: sdl or introspection")
	return cmd
}
