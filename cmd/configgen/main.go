package main

import (
	"flag"
	"log"
	"os"

	"github.com/danmuck/fixwire/internal/config"
)

func main() {
	if err := run(os.Args[1:], log.Default()); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, logger *log.Logger) error {
	fs := flag.NewFlagSet("configgen", flag.ContinueOnError)
	format := fs.String("format", "toml", "catalog format: toml|yaml")
	output := fs.String("output", "", "output path for catalog template (defaults to catalog.<format>)")
	validate := fs.Bool("validate", false, "validate an existing catalog file")
	input := fs.String("input", "", "catalog path for validation (defaults to catalog.<format>)")
	force := fs.Bool("force", false, "overwrite existing catalog file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *validate {
		path := *input
		if path == "" {
			path = "catalog." + *format
		}
		c, err := config.LoadCatalog(path)
		if err != nil {
			return err
		}
		logger.Printf("Validated catalog at %s: %v", path, c.Names())
		return nil
	}

	target := *output
	if target == "" {
		target = "catalog." + *format
	}
	if err := config.WriteTemplate(target, *format, *force); err != nil {
		return err
	}
	logger.Printf("Wrote %s catalog template to %s", *format, target)
	return nil
}
