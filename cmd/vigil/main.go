// Package main is the entry point for vigil — Evidence, not assumptions.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/ancients-collective/vigil/internal/collect"
	"github.com/ancients-collective/vigil/internal/config"
	"github.com/ancients-collective/vigil/internal/engine"
	"github.com/ancients-collective/vigil/internal/output"
	"github.com/ancients-collective/vigil/internal/sysinfo"
	"github.com/ancients-collective/vigil/internal/types"
)

// version is set at build time via -ldflags. The default is a dev fallback
// for plain `go install` or `go run` usage.
var version = "0.3.1"

// Color helpers — each returns a sprint function.
var (
	cBold  = color.New(color.Bold).SprintFunc()
	cGreen = color.New(color.FgGreen).SprintFunc()
	cRed   = color.New(color.FgRed).SprintFunc()
	cDim   = color.New(color.Faint).SprintFunc()
)

// Config holds all parsed CLI flag values.
type Config struct {
	Output     string
	Format     string
	Verbose    bool
	NoColor    bool
	ConfigFile string
	List       bool

	// set records which flags were given explicitly, so config-file
	// defaults never override them.
	set map[string]bool
}

// parseFlags parses command-line arguments into a Config using a dedicated
// FlagSet, keeping the global flag.CommandLine clean for testability.
func parseFlags(args []string) (*Config, error) {
	cfg := &Config{set: make(map[string]bool)}
	fs := flag.NewFlagSet("vigil", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.Output, "output", "", "Destination path for the report (required)")
	fs.StringVar(&cfg.Output, "o", "", "Destination path for the report (shorthand)")
	fs.StringVar(&cfg.Format, "format", "html", "Report format: html, csv, json")
	fs.StringVar(&cfg.Format, "f", "html", "Report format (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Print per-check progress and a completion confirmation")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output (shorthand)")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	fs.StringVar(&cfg.ConfigFile, "config", "", "Path to a YAML config file with flag defaults")
	fs.BoolVar(&cfg.List, "list", false, "List the control catalog and exit")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "        _      _ _\n")
		fmt.Fprintf(os.Stderr, " __   _(_) __ _(_) |\n")
		fmt.Fprintf(os.Stderr, " \\ \\ / / |/ _` | | |\n")
		fmt.Fprintf(os.Stderr, "  \\ V /| | (_| | | |\n")
		fmt.Fprintf(os.Stderr, "   \\_/ |_|\\__, |_|_|  v%s\n", version)
		fmt.Fprintf(os.Stderr, "          |___/\n")
		fmt.Fprintf(os.Stderr, "  Evidence, not assumptions\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "  Audits a Windows host against a fixed set of CMMC 2.0 / NIST SP 800-171\n")
		fmt.Fprintf(os.Stderr, "  controls and writes a pass/fail report. Strictly read-only.\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "  Usage: vigil -o <path> [options]\n\n")
		fmt.Fprintf(os.Stderr, "  Options:\n")
		fmt.Fprintf(os.Stderr, "    -o,  --output <path>      Destination path for the report (required)\n")
		fmt.Fprintf(os.Stderr, "    -f,  --format <type>      Report format: html, csv, json (default: html)\n")
		fmt.Fprintf(os.Stderr, "    -v,  --verbose            Per-check progress and completion confirmation\n")
		fmt.Fprintf(os.Stderr, "         --config <file>      YAML config file with flag defaults\n")
		fmt.Fprintf(os.Stderr, "         --no-color           Disable colored output\n")
		fmt.Fprintf(os.Stderr, "         --list               List the control catalog and exit\n")
		fmt.Fprintf(os.Stderr, "\n  Examples:\n")
		fmt.Fprintf(os.Stderr, "    vigil -o report.html                  HTML report (default format)\n")
		fmt.Fprintf(os.Stderr, "    vigil -o report.csv -f csv            Flat CSV for spreadsheets\n")
		fmt.Fprintf(os.Stderr, "    vigil -o report.json -f json -v       JSON with verbose progress\n")
		fmt.Fprintf(os.Stderr, "    vigil --config vigil.yaml             Defaults from a config file\n")
		fmt.Fprintf(os.Stderr, "    vigil --list                          Show the audited controls\n")
		fmt.Fprintf(os.Stderr, "\n  A failing check never changes the exit code; vigil exits non-zero only\n")
		fmt.Fprintf(os.Stderr, "  when the report itself cannot be produced.\n")
		fmt.Fprintf(os.Stderr, "\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		cfg.set[f.Name] = true
	})
	return cfg, nil
}

// applyConfigFile fills in flags the user left unset from the config file.
func applyConfigFile(cfg *Config, file *config.File) {
	if file.Format != "" && !cfg.set["format"] && !cfg.set["f"] {
		cfg.Format = file.Format
	}
	if file.Output != "" && !cfg.set["output"] && !cfg.set["o"] {
		cfg.Output = file.Output
	}
	if file.Verbose && !cfg.set["verbose"] && !cfg.set["v"] {
		cfg.Verbose = true
	}
	if file.NoColor && !cfg.set["no-color"] {
		cfg.NoColor = true
	}
}

// setupColor disables ANSI color when asked to, when stderr is not a
// terminal, or when the terminal can't render it.
func setupColor(cfg *Config) {
	t := os.Getenv("TERM")
	if cfg.NoColor || t == "dumb" || t == "" || !term.IsTerminal(int(os.Stderr.Fd())) {
		color.NoColor = true
	}
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(1)
	}
	os.Exit(run(cfg))
}

// run executes the audit with the given configuration and returns an exit
// code: 0 when the report was produced (regardless of FAIL rows), 1 when
// it could not be.
func run(cfg *Config) int {
	start := time.Now()

	if cfg.ConfigFile != "" {
		file, err := config.Load(cfg.ConfigFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ %v\n", err)
			return 1
		}
		applyConfigFile(cfg, file)
	}

	setupColor(cfg)

	if cfg.List {
		printCatalog()
		return 0
	}

	if cfg.Output == "" {
		fmt.Fprintf(os.Stderr, "  ✗ No output path given (use -o <path>)\n")
		return 1
	}
	formatter, err := output.New(cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  ✗ %v\n", err)
		return 1
	}

	runner := engine.NewRunner(collect.NewSource())
	if cfg.Verbose {
		runner.Progress = func(done, total int, c engine.Check) {
			fmt.Fprintf(os.Stderr, "  %s [%d/%d] %s — %s\n",
				cDim("▸"), done, total, cBold(c.ControlID), c.Description)
		}
	}
	results := runner.Run()

	summary := types.Summarize(results)
	summary.DurationMS = time.Since(start).Milliseconds()
	report := &types.AuditReport{
		Version:   version,
		Timestamp: start,
		Host:      sysinfo.Detect(),
		Summary:   summary,
		Results:   results,
	}

	if err := output.WriteFile(cfg.Output, formatter, report); err != nil {
		fmt.Fprintf(os.Stderr, "  ✗ %v\n", err)
		return 1
	}

	fmt.Fprintf(os.Stderr, "  %s · %s\n",
		cGreen(fmt.Sprintf("%d passed", summary.Passed)),
		cRed(fmt.Sprintf("%d failed", summary.Failed)))

	if cfg.Verbose {
		resolved := cfg.Output
		if abs, err := filepath.Abs(cfg.Output); err == nil {
			resolved = abs
		}
		fmt.Fprintf(os.Stderr, "  %s Report written to %s\n", cGreen("✓"), resolved)
	}

	return 0
}

// printCatalog lists the fixed control catalog, grouped by family.
func printCatalog() {
	family := ""
	for _, c := range engine.Catalog() {
		if c.Family != family {
			family = c.Family
			fmt.Printf("\n  %s\n", cBold(family))
		}
		fmt.Printf("    %-7s %s %s\n", c.ControlID, c.Description, cDim("("+c.Compliant+")"))
	}
	fmt.Println()
}
