package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var (
	readFile  int
	readRaw   bool
	readHTML  bool
	readWidth int
)

var readCmd = &cobra.Command{
	Use:   "read <module-id>",
	Short: "Render a module page in the terminal",
	Long:  `Fetches a module page the same way the web browser does and renders the markdown for the terminal.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		svc, err := newService(cfg, newLogger())
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		if readHTML {
			page, err := svc.Load(ctx, args[0], readFile)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, page.HTML)
			return nil
		}

		page, err := svc.Fetch(ctx, args[0], readFile)
		if err != nil {
			return err
		}
		if readRaw {
			fmt.Fprint(out, string(page.Markdown))
			return nil
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(readWidth),
		)
		if err != nil {
			return fmt.Errorf("creating terminal renderer: %w", err)
		}
		rendered, err := renderer.Render(string(page.Markdown))
		if err != nil {
			return fmt.Errorf("rendering %s: %w", page.Requested, err)
		}
		fmt.Fprint(out, rendered)
		return nil
	},
}

func init() {
	readCmd.Flags().IntVar(&readFile, "file", 0, "Sub-file index for modules with several pages")
	readCmd.Flags().BoolVar(&readRaw, "raw", false, "Print the markdown unrendered")
	readCmd.Flags().BoolVar(&readHTML, "html", false, "Print the HTML the web browser shows")
	readCmd.Flags().IntVar(&readWidth, "width", 100, "Word wrap width")
	readCmd.MarkFlagsMutuallyExclusive("raw", "html")
	rootCmd.AddCommand(readCmd)
}
