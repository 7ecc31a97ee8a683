package cmd

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ziadkadry99/docbrowser/internal/browser"
	"github.com/ziadkadry99/docbrowser/internal/catalog"
	"github.com/ziadkadry99/docbrowser/internal/config"
	"github.com/ziadkadry99/docbrowser/internal/db"
	"github.com/ziadkadry99/docbrowser/internal/fetcher"
	"github.com/ziadkadry99/docbrowser/internal/prefs"
	"github.com/ziadkadry99/docbrowser/internal/render"
	"github.com/ziadkadry99/docbrowser/internal/resolver"
)

// contentMount is where the web server exposes a filesystem content dir.
const contentMount = "/content/"

// databaseFile is the preference store inside the data dir.
const databaseFile = "docbrowser.db"

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `docbrowser init` to create a config file", err)
	}
	return cfg, nil
}

// newService wires catalog, transport, renderer and roots from config.
func newService(cfg *config.Config, logger *log.Logger) (*browser.Service, error) {
	cat, err := catalog.New(cfg.Modules)
	if err != nil {
		return nil, err
	}

	transport, err := newTransport(cfg.Source)
	if err != nil {
		return nil, err
	}

	root := deploymentRoot(cfg.Source)
	logger.Debug("deployment root", "root", root, "source", cfg.Source.Type)

	return browser.NewService(browser.Options{
		Catalog: cat,
		Fetcher: fetcher.New(transport, logger.WithPrefix("fetch")),
		Renderer: render.New(render.Options{
			HighlightStyle: cfg.Highlight,
			AssetBase:      assetBase(cfg.Source, root),
		}),
		Root:     root,
		Detector: rootDetector(cfg.Source),
		Logger:   logger,
	}), nil
}

func newTransport(src config.SourceConfig) (fetcher.Transport, error) {
	switch src.Type {
	case config.SourceHTTP:
		return fetcher.NewHTTPTransport(src.URL)
	case config.SourceFS:
		return &fetcher.FSTransport{Dir: src.Dir}, nil
	default:
		return nil, fmt.Errorf("unknown source type %q", src.Type)
	}
}

// deploymentRoot is detected once at startup. A configured base path wins;
// otherwise the site URL decides for http sources and fs sources use "/".
func deploymentRoot(src config.SourceConfig) resolver.Root {
	if src.BasePath != "" {
		return resolver.NormalizeRoot(src.BasePath)
	}
	if src.Type == config.SourceHTTP {
		return resolver.DetectRoot(src.URL)
	}
	return resolver.DefaultRoot
}

// rootDetector answers the re-detection candidate. For http sources it
// re-reads the site URL, honouring a later DOCBROWSER_SOURCE__URL override.
func rootDetector(src config.SourceConfig) resolver.Detector {
	if src.BasePath != "" || src.Type != config.SourceHTTP {
		return resolver.StaticRoot(deploymentRoot(src))
	}
	return resolver.URLDetector(func() string {
		if v := os.Getenv(config.EnvPrefix + "SOURCE__URL"); v != "" {
			return v
		}
		return src.URL
	})
}

// assetBase is the prefix for relative images in rendered pages.
func assetBase(src config.SourceConfig, root resolver.Root) string {
	if src.Type != config.SourceHTTP {
		return contentMount
	}
	u, err := url.Parse(src.URL)
	if err != nil {
		return root.String()
	}
	u.RawQuery = ""
	u.Fragment = ""
	if root.Prefixed() {
		u.Path = root.String()
		return u.String()
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// contentDir is the directory served under contentMount, empty for http
// sources.
func contentDir(cfg *config.Config) string {
	if cfg.Source.Type == config.SourceFS {
		return cfg.Source.Dir
	}
	return ""
}

// openPrefs opens the preference store in the data dir.
func openPrefs(cfg *config.Config) (*db.DB, *prefs.Store, error) {
	database, err := db.Open(filepath.Join(cfg.Server.DataDir, databaseFile))
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return database, prefs.NewStore(database), nil
}
