// Package main is the entry point for calcpad.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/iw2rmb/calcpad"
	"github.com/iw2rmb/calcpad/editor"
	"github.com/iw2rmb/calcpad/internal/config"
	"github.com/iw2rmb/calcpad/internal/docfile"
	"github.com/iw2rmb/calcpad/internal/logging"
	"github.com/iw2rmb/calcpad/session"
)

var errNotTerminal = errors.New("stdin is not a terminal")

type options struct {
	configPath    string
	logFile       string
	logLevel      string
	stripComments string
	inline        bool
	showVersion   bool
	file          string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if opts.showVersion {
		fmt.Fprintln(stderr, calcpad.Banner())
		return 0
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		fmt.Fprintf(stderr, "Error: %v\n", errNotTerminal)
		return 1
	}

	if err := edit(cfg); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet(calcpad.Name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", config.DefaultPath(), "Path to configuration file")
	fs.StringVar(&opts.configPath, "c", config.DefaultPath(), "Path to configuration file (shorthand)")
	fs.StringVar(&opts.logFile, "log-file", "", "Append logs to this file")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.stripComments, "strip-comments", "", "Drop comment lines on save (true or false)")
	fs.BoolVar(&opts.inline, "inline", false, "Insert results into the document instead of the message line")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "calcpad - calculator notebook editor\n\n")
		fmt.Fprintf(stderr, "Usage: calcpad [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nIn the editor:\n")
		fmt.Fprintf(stderr, "  f(x):= 2*x+3   define f\n")
		fmt.Fprintf(stderr, "  f(5)           evaluate f at 5\n")
		fmt.Fprintf(stderr, "  f = 13         solve f(x) = 13 for x\n")
		fmt.Fprintf(stderr, "  esc            save and quit; ctrl+c quits without saving\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 1 {
		fmt.Fprintf(stderr, "Error: expected at most one file, got %d\n", fs.NArg())
		fs.Usage()
		return opts, errors.New("too many arguments")
	}
	opts.file = fs.Arg(0)
	return opts, nil
}

// loadConfig layers defaults, file, environment and flags, in that order.
func loadConfig(opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	if opts.file != "" {
		cfg.File = opts.file
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.inline {
		cfg.Placement = config.PlacementInline
	}
	switch opts.stripComments {
	case "":
	case "true":
		cfg.StripComments = true
	case "false":
		cfg.StripComments = false
	default:
		return cfg, fmt.Errorf("-strip-comments %q: %w", opts.stripComments, config.ErrInvalidValue)
	}

	return cfg, cfg.Validate()
}

func sessionOptions(cfg config.Config) session.Options {
	placement := session.PlaceMessage
	if cfg.Placement == config.PlacementInline {
		placement = session.PlaceInline
	}
	return session.Options{
		CommentPrefix: cfg.CommentPrefix,
		StripComments: cfg.StripComments,
		Placement:     placement,
	}
}

// edit runs one session over cfg.File. Any I/O failure ends the process.
func edit(cfg config.Config) error {
	log, logCloser, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	doc, err := docfile.Open(cfg.File)
	if err != nil {
		return err
	}
	defer doc.Close()
	log.Info("session start", "file", doc.Path(), "bytes", len(doc.Text()))

	sopts := sessionOptions(cfg)
	sopts.Logger = log
	sess := session.New(doc.Text(), sopts)

	ed := editor.New(sess, editor.Config{
		Title:        doc.Path(),
		ShowLineNums: cfg.ShowLineNumbers,
		Style:        editor.DefaultStyle(),
	})
	p := tea.NewProgram(app{editor: ed}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}

	if sess.Exit() != session.ExitSave {
		log.Info("session discarded", "file", doc.Path())
		return nil
	}
	if err := doc.Save(sess.Serialize()); err != nil {
		return err
	}
	log.Info("session saved", "file", doc.Path())
	return nil
}
