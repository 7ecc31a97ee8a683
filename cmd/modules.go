package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docbrowser/internal/catalog"
)

var modulesJSON bool

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the configured modules in display order",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cat, err := catalog.New(cfg.Modules)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if modulesJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(cat.Categories())
		}

		fmt.Fprintln(out, headerStyle.Render(cfg.Title))
		for _, c := range cat.Categories() {
			fmt.Fprintln(out, categoryStyle.Render(c.Name))
			for _, m := range c.Modules {
				fmt.Fprintf(out, "  %d. %s %s\n", m.Order, m.Name, valueStyle.Render("("+m.ID+")"))
				for i, f := range m.Files {
					fmt.Fprintf(out, "     %s %s\n", valueStyle.Render(fmt.Sprintf("[%d]", i)), f.Name)
				}
			}
		}
		return nil
	},
}

func init() {
	modulesCmd.Flags().BoolVar(&modulesJSON, "json", false, "Print the catalog as JSON")
	rootCmd.AddCommand(modulesCmd)
}
