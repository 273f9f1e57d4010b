package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/docwriter"
)

func main() {
	var (
		format       = flag.String("format", "json", "Output format (json, yaml)")
		keepDefaults = flag.Bool("keep-defaults", false, "Write values equal to their defaults")
		compact      = flag.Bool("compact", false, "Compact JSON output")
		sampleName   = flag.String("sample", "", "Write only the named sample")
		list         = flag.Bool("list", false, "List registered types and exit")
		verbose      = flag.Bool("v", false, "Log diagnostics")
		interactive  = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *format != "json" && *format != "yaml" {
		fmt.Fprintln(os.Stderr, "Usage: inspect [-format json|yaml] [-keep-defaults] [-compact] [-sample name] [-v]")
		fmt.Fprintln(os.Stderr, "       inspect -list")
		fmt.Fprintln(os.Stderr, "       inspect -i  (interactive mode)")
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*format, *keepDefaults); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg := &docwriter.Config{KeepDefaults: *keepDefaults}
	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		cfg.Logger = logger
	}

	if err := run(os.Stdout, cfg, *format, *compact, *sampleName, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(out io.Writer, cfg *docwriter.Config, format string, compact bool, sampleName string, listOnly bool) error {
	w := docwriter.NewWithConfig(cfg)
	if err := registerScene(w); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	if listOnly {
		c := w.Catalog()
		fmt.Fprintf(out, "Registered types:\n")
		for _, name := range c.Names() {
			for _, id := range c.FindTypeIDsByName(name) {
				fmt.Fprintf(out, "  %s  %s\n", id, name)
			}
		}
		if amb := c.Ambiguous(); len(amb) > 0 {
			fmt.Fprintf(out, "\nAmbiguous names: %s\n", strings.Join(amb, ", "))
		}
		return nil
	}

	found := false
	for _, s := range samples() {
		if sampleName != "" && s.name != sampleName {
			continue
		}
		found = true

		text, diags, err := render(w, s.value, format, !compact)
		if err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		fmt.Fprintf(out, "--- %s ---\n%s", s.name, text)
		for _, d := range diags {
			fmt.Fprintf(out, "! %s\n", d)
		}
	}
	if !found {
		return fmt.Errorf("unknown sample %q", sampleName)
	}
	return nil
}

// render writes v and returns the encoded document and its diagnostics.
func render(w *docwriter.Writer, v any, format string, indent bool) (string, []string, error) {
	res, err := w.Store(v)
	if err != nil {
		return "", nil, err
	}

	var data []byte
	if format == "yaml" {
		data, err = res.YAML()
	} else {
		data, err = res.JSON(indent)
		if !indent {
			data = append(data, '\n')
		}
	}
	if err != nil {
		return "", nil, err
	}

	diags := make([]string, len(res.Diagnostics))
	for i, d := range res.Diagnostics {
		diags[i] = d.Error()
	}
	return string(data), diags, nil
}
