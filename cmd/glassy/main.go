package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/glassy/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional, defaults to ~/.config/glassy/config.toml)")
	catalogPath := flag.String("catalog", "", "catalog file or glob, e.g. 'catalogs/**/*.yaml' (optional, defaults to the bundled catalog)")
	theme := flag.String("theme", "", "color theme: Glass, Nightfox or Slate (optional)")
	watch := flag.Bool("watch", false, "reload the catalog when its files change")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Only flags given on the command line override the config file.
	opts := app.Options{ConfigPath: *configPath}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "catalog":
			opts.Catalog = catalogPath
		case "theme":
			opts.Theme = theme
		case "watch":
			opts.Watch = watch
		}
	})

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "glassy: %v\n", err)
		return 1
	}
	return 0
}
