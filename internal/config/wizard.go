package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// DefaultPath is the config file written by the wizard and read by default.
const DefaultPath = "docbrowser.yml"

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path. The module list is
// seeded with the built-in course and is meant to be curated by hand.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to docbrowser! Let's configure your course site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	cfg.Title = title

	// 2. Where the markdown lives.
	sourcePrompt := promptui.Select{
		Label: "Where are the module markdown files served from",
		Items: []string{
			"fs   — a local directory",
			"http — a static site (e.g. GitHub Pages)",
		},
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source selection: %w", err)
	}

	if sourceIdx == 0 {
		dirPrompt := promptui.Prompt{
			Label:   "Content directory",
			Default: cfg.Source.Dir,
		}
		dir, err := dirPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("content dir: %w", err)
		}
		cfg.Source = SourceConfig{Type: SourceFS, Dir: dir}
	} else {
		urlPrompt := promptui.Prompt{
			Label: "Site URL",
			Validate: func(s string) error {
				if s == "" {
					return fmt.Errorf("a URL is required")
				}
				return nil
			},
		}
		siteURL, err := urlPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("site url: %w", err)
		}
		cfg.Source = SourceConfig{Type: SourceHTTP, URL: siteURL}
	}

	// 3. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port for docbrowser serve",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p <= 0 || p > 65535 {
				return fmt.Errorf("invalid port %q", s)
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s (%d modules, edit the modules list to curate)\n", path, len(cfg.Modules))
	return cfg, nil
}
