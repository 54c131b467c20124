package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) renderCommand() *cobra.Command {
	var (
		outFile string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "render <file>...",
		Short: "Print the normalized form of a schema",
		Long: `Load one schema from SDL files or an introspection result and print it with
types and directives sorted by name.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateSchemaFormat(format); err != nil {
				return err
			}
			var paths []string
			for _, arg := range args {
				paths = append(paths, splitPaths(arg)...)
			}
			s, err := c.pipeline.Load(cmd.Context(), paths...)
			if err != nil {
				return err
			}
			return writeSchema(cmd.OutOrStdout(), outFile, s, format)
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write the schema to file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", formatSDL, "output format: sdl or introspection")
	return cmd
}
