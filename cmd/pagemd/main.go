package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagemd"
	"github.com/fwojciec/pagemd/fs"
	"github.com/fwojciec/pagemd/goquery"
	"github.com/fwojciec/pagemd/htmltomarkdown"
	"github.com/fwojciec/pagemd/readability"
	pmslog "github.com/fwojciec/pagemd/slog"
	"github.com/fwojciec/pagemd/trafilatura"
	"github.com/fwojciec/pagemd/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read for the "-" input file.
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagemd"),
		kong.Description("Convert saved HTML pages to clean Markdown articles"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	profiles := yaml.DefaultProfiles()
	if cli.Profiles != "" {
		extra, err := yaml.LoadProfilesFile(cli.Profiles)
		if err != nil {
			fmt.Fprintf(stderr, "error: loading profiles: %s\n", errorText(err))
			return err
		}
		profiles = profiles.Merge(extra)
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	native := goquery.NewConverter(profiles)
	native.InlineCodeMax = cli.InlineMax
	switch cli.Extractor {
	case "trafilatura":
		native.Extractor = pmslog.NewLoggingExtractor(trafilatura.NewExtractor(), cli.Extractor, logger)
	case "readability":
		native.Extractor = pmslog.NewLoggingExtractor(readability.NewExtractor(), cli.Extractor, logger)
	}

	var conv pagemd.Converter = native
	if cli.Engine == "commonmark" {
		conv = htmltomarkdown.NewConverter(native)
	}
	deps.Converter = pmslog.NewLoggingConverter(conv, logger)

	if cli.Out != "" {
		deps.Writer = fs.NewWriter(cli.Out)
	}

	cmd := &ConvertCmd{
		Files: cli.Files,
		URL:   cli.URL,
		Options: pagemd.Options{
			IncludeImages: !cli.NoImages,
			IncludeLinks:  !cli.NoLinks,
			IncludeTables: !cli.NoTables,
		},
		Outline:     cli.Outline,
		Concurrency: cli.Concurrency,
	}

	return cmd.Run(deps)
}
