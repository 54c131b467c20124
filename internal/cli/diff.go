package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heneryville/graphql-schema-utils/internal/diff"
	"github.com/heneryville/graphql-schema-utils/internal/report"
)

// diffOpts holds the command-line flags for the diff command. Unset flags
// fall back to the [diff] section of the configuration file.
type diffOpts struct {
	labelThis      string
	labelOther     string
	format         string
	breakingOnly   bool
	failOnBreaking bool
}

// ErrBreakingChanges is returned by diff when --fail-on-breaking is set and
// breaking changes were found.
var ErrBreakingChanges = errors.New("breaking changes found")

func (c *CLI) diffCommand() *cobra.Command {
	var opts diffOpts

	cmd := &cobra.Command{
		Use:   "diff <this> <other>",
		Short: "List the differences between two schemas",
		Long: `Compare the schema <this> against <other> and list every difference, marking
each one breaking or backward compatible. An argument may name several SDL
files separated by commas, or a single introspection result (.json).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyDiffConfig(cmd, &opts)
			if err := report.ValidateFormat(opts.format); err != nil {
				return err
			}

			diffs, err := c.pipeline.Diff(cmd.Context(), splitPaths(args[0]), splitPaths(args[1]), diff.Options{
				LabelForThis:  opts.labelThis,
				LabelForOther: opts.labelOther,
			})
			if err != nil {
				return err
			}

			shown := diffs
			if opts.breakingOnly {
				shown = diff.Breaking(diffs)
			}
			out := cmd.OutOrStdout()
			if err := report.Write(out, report.Summarize(shown), opts.format, isTerminal(out)); err != nil {
				return err
			}

			if opts.failOnBreaking && diff.HasBreaking(diffs) {
				return fmt.Errorf("%w: %d", ErrBreakingChanges, len(diff.Breaking(diffs)))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.labelThis, "label-this", "", `name of <this> in descriptions (default "this schema")`)
	flags.StringVar(&opts.labelOther, "label-other", "", `name of <other> in descriptions (default "other schema")`)
	flags.StringVarP(&opts.format, "format", "f", report.FormatText, "output format: text, json, or yaml")
	flags.BoolVar(&opts.breakingOnly, "breaking-only", false, "list only breaking changes")
	flags.BoolVar(&opts.failOnBreaking, "fail-on-breaking", false, "exit with an error when breaking changes are found")
	return cmd
}

func (c *CLI) applyDiffConfig(cmd *cobra.Command, opts *diffOpts) {
	flags := cmd.Flags()
	cfg := c.cfg.Diff
	if !flags.Changed("label-this") {
		opts.labelThis = cfg.LabelThis
	}
	if !flags.Changed("label-other") {
		opts.labelOther = cfg.LabelOther
	}
	if !flags.Changed("format") && cfg.Format != "" {
		opts.format = cfg.Format
	}
	if !flags.Changed("breaking-only") {
		opts.breakingOnly = !cfg.IncludeCompatible
	}
	if !flags.Changed("fail-on-breaking") {
		opts.failOnBreaking = cfg.FailOnBreaking
	}
}
