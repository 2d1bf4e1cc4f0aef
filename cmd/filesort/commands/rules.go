package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/filesort/pkg/config"
	"github.com/arthur-debert/filesort/pkg/paths"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules [source-dir]",
		Short: MsgRulesShort,
		Long:  "Rules prints the rule list that would apply in the source directory,\nafter config discovery and layering. Rules match in the order shown.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := "."
			if len(args) == 1 {
				source = args[0]
			}
			source, err := filepath.Abs(source)
			if err != nil {
				return err
			}

			cfgPath := paths.FindConfig(cfgFile, source)
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.SetStyle(table.StyleRounded)
			tw.AppendHeader(table.Row{"#", "name", "type", "patterns", "folder"})
			for i, rule := range cfg.Rules {
				tw.AppendRow(table.Row{
					i + 1,
					rule.Name,
					string(rule.Kind),
					strings.Join(rule.Patterns, " "),
					rule.OutputFolder,
				})
			}
			tw.Render()

			fmt.Fprintf(cmd.OutOrStdout(), "\nUnmatched files go to %q.\n", cfg.Settings.UnmatchedFolder)
			if cfgPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "(built-in defaults, no config file found)")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "(from %s)\n", cfgPath)
			}
			return nil
		},
	}
}

func newGenconfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenconfigShort,
		Long:  "Genconfig prints the built-in default configuration as commented TOML.\nRedirect it to filesort.toml and edit from there.",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultConfigContent())
			return err
		},
	}
}
