// repl-suite is a line-editing engine for building command-line
// interpreters. This demo reads commands with full editing, history,
// and multi-line delimiter continuation, and echoes each one back.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sebastian-j-ibanez/repl-suite/config"
	"github.com/sebastian-j-ibanez/repl-suite/delim"
	"github.com/sebastian-j-ibanez/repl-suite/repl"
	"github.com/sebastian-j-ibanez/repl-suite/term"
)

const banner = `repl-suite demo
Type commands; unbalanced delimiters continue on the next line.
Ctrl-D on an empty line exits.`

func main() {
	initConfig := false

	for _, arg := range os.Args[1:] {
		switch arg {
		case "--init-config":
			initConfig = true
		case "-h", "--help":
			printUsage()
			return
		}
	}

	// Generate default config and exit
	if initConfig {
		fmt.Print(config.DefaultTOML())
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`repl-suite - interactive line-editing demo

Usage: repl-suite [options]

Options:
  --init-config     Output default config (redirect to ~/.config/repl-suite/config.toml)
  -h, --help        Show this help

Configuration:
  Config file: ~/.config/repl-suite/config.toml
  Generate with: repl-suite --init-config > ~/.config/repl-suite/config.toml`)
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	sess, err := term.Open(os.Stdin, os.Stdout)
	if err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	if err := sess.EnterRaw(); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer sess.Restore()

	// Raw mode disables keyboard-generated signals, but an outside
	// SIGTERM/SIGHUP would otherwise leave the terminal unusable.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		<-sigCh
		sess.Restore()
		os.Exit(1)
	}()

	reader, err := repl.NewReader(sess, repl.Options{
		Prompt:       cfg.Prompt.Main,
		ContPrompt:   cfg.Prompt.Continuation,
		Pairs:        pairsFromConfig(cfg.Delimiters.Pairs),
		Quotes:       []byte(cfg.Delimiters.Quotes),
		HistoryLimit: cfg.History.Limit,
		HistoryFile:  cfg.History.File,
	})
	if err != nil {
		return err
	}

	sess.WriteString(crlf(banner) + "\r\n")

	for {
		cmd, err := reader.ReadCommand()
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, repl.ErrInterrupt):
			continue
		case err != nil:
			return err
		}

		if strings.TrimSpace(cmd) == "" {
			continue
		}
		sess.WriteString(crlf(cmd) + "\r\n")
	}
}

// pairsFromConfig parses two-character "()" style pair strings,
// skipping malformed entries.
func pairsFromConfig(pairs []string) []delim.Pair {
	var out []delim.Pair
	for _, p := range pairs {
		if len(p) != 2 {
			continue
		}
		out = append(out, delim.Pair{Open: p[0], Close: p[1]})
	}
	return out
}

// crlf rewrites newlines for raw-mode output, where OPOST is disabled.
func crlf(s string) string {
	return strings.ReplaceAll(s, "\n", "\r\n")
}
