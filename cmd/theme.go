package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docbrowser/internal/prefs"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the stored colour theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPrefs(func(store *prefs.Store) error {
			theme, err := store.Theme(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme)
			return nil
		})
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between light and dark",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPrefs(func(store *prefs.Store) error {
			theme, err := store.ToggleTheme(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme)
			return nil
		})
	},
}

var themeSetCmd = &cobra.Command{
	Use:       "set <light|dark>",
	Short:     "Store a theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(prefs.ThemeLight), string(prefs.ThemeDark)},
	RunE: func(cmd *cobra.Command, args []string) error {
		theme := prefs.Theme(args[0])
		if !theme.Valid() {
			return fmt.Errorf("unknown theme %q (want light or dark)", args[0])
		}
		return withPrefs(func(store *prefs.Store) error {
			return store.SetTheme(cmd.Context(), theme)
		})
	},
}

func withPrefs(fn func(*prefs.Store) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	database, store, err := openPrefs(cfg)
	if err != nil {
		return err
	}
	defer database.Close()
	return fn(store)
}

func init() {
	themeCmd.AddCommand(themeToggleCmd, themeSetCmd)
	rootCmd.AddCommand(themeCmd)
}
