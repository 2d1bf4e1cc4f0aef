package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/filesort/pkg/config"
	"github.com/arthur-debert/filesort/pkg/core"
	"github.com/arthur-debert/filesort/pkg/errors"
	"github.com/arthur-debert/filesort/pkg/filesystem"
	"github.com/arthur-debert/filesort/pkg/logging"
	"github.com/arthur-debert/filesort/pkg/paths"
	"github.com/arthur-debert/filesort/pkg/ui"
)

func newOrganizeCmd() *cobra.Command {
	var outputDir string
	var reportPath string

	cmd := &cobra.Command{
		Use:   "organize [source-dir]",
		Short: MsgOrganizeShort,
		Long:  MsgOrganizeLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.organize")
			defer logging.LogDuration(time.Now(), "organize")

			source := "."
			if len(args) == 1 {
				source = args[0]
			}
			source, err := filepath.Abs(source)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid source directory")
			}
			if info, err := os.Stat(source); err != nil || !info.IsDir() {
				return errors.Newf(errors.ErrSourceAccess, "source directory %s does not exist", source)
			}

			cfgPath := paths.FindConfig(cfgFile, source)
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			// CLI flags override config file settings
			if cmd.Flags().Changed("dry-run") {
				cfg.Settings.DryRun = dryRun
			}
			if cmd.Flags().Changed("overwrite") {
				cfg.Settings.Overwrite = overwrite
			}

			output := source
			if outputDir != "" {
				if output, err = filepath.Abs(outputDir); err != nil {
					return errors.Wrap(err, errors.ErrInvalidInput, "invalid output directory")
				}
			}

			// One session per source dir at a time. Dry-run skips the lock:
			// it must not create any file, the lock file included.
			if !cfg.Settings.DryRun {
				lock := flock.New(filepath.Join(source, paths.LockFileName))
				locked, err := lock.TryLock()
				if err != nil || !locked {
					return errors.Newf(errors.ErrLockHeld,
						"another filesort session is running in %s", source)
				}
				defer func() {
					_ = lock.Unlock()
					_ = os.Remove(lock.Path())
				}()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgSessionFormat, source, output)
			if cfg.Settings.DryRun {
				fmt.Fprintln(out, ui.DryRunStyle.Render(MsgDryRunNotice))
			}
			fmt.Fprintln(out)

			cfgName := ""
			if cfgPath != "" {
				cfgName = filepath.Base(cfgPath)
			}
			result, err := core.Organize(core.OrganizeOptions{
				SourceDir:      source,
				OutputDir:      output,
				Config:         cfg,
				FS:             filesystem.NewOS(),
				ConfigFileName: cfgName,
				Progress:       out,
			})
			if err != nil {
				return err
			}
			if result == nil {
				fmt.Fprintln(out, MsgNothingToDo)
				return nil
			}

			fmt.Fprint(out, ui.RenderReport(result))

			if reportPath != "" {
				if err := ui.WriteReport(filesystem.NewOS(), reportPath, result); err != nil {
					return err
				}
				logger.Info().Str("path", reportPath).Msg("Report exported")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", FlagOutput)
	cmd.Flags().StringVar(&reportPath, "report", "", FlagReport)

	return cmd
}
