package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docbrowser/internal/check"
	"github.com/ziadkadry99/docbrowser/internal/progress"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that every module page can be found and rendered",
	Long: `Loads every module page through the same candidate path fallback the
browser uses and reports which path served it. With a filesystem source it
also lists markdown files no module refers to.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger()
		svc, err := newService(cfg, logger)
		if err != nil {
			return err
		}

		checker := check.New(svc, check.Options{
			ContentDir: contentDir(cfg),
			Reporter:   progress.NewReporter("Checking modules"),
			Logger:     logger,
		})
		report, err := checker.Run(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Checked %d pages under root %s", len(report.Pages), svc.Root())))
		for _, p := range report.Pages {
			label := p.Module.ID
			if p.Module.HasFiles() {
				label = fmt.Sprintf("%s[%d]", p.Module.ID, p.File)
			}
			if p.OK() {
				fmt.Fprintf(out, "%s %s %s\n", okStyle.Render("✓"), label,
					valueStyle.Render(fmt.Sprintf("%s (%d attempts)", p.Path, p.Attempts)))
				continue
			}
			fmt.Fprintf(out, "%s %s %s\n", failStyle.Render("✗"), label, valueStyle.Render(p.Err.Error()))
		}

		if len(report.Orphans) > 0 {
			fmt.Fprintln(out, categoryStyle.Render(fmt.Sprintf("%d markdown files not referenced by any module", len(report.Orphans))))
			for _, o := range report.Orphans {
				fmt.Fprintf(out, "  %s\n", o)
			}
			fmt.Fprintln(out, hintStyle.Render("Add them as module paths, alt_paths or files to make them reachable."))
		}

		if n := report.Failed(); n > 0 {
			return fmt.Errorf("%d of %d pages could not be loaded", n, len(report.Pages))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
