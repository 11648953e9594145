package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/fatih/color"
	flag "github.com/spf13/pflag"

	"github.com/daxida/grs/internal/config"
	"github.com/daxida/grs/internal/engine"
	"github.com/daxida/grs/internal/greek"
	"github.com/daxida/grs/internal/lint"
	"github.com/daxida/grs/internal/log"
	"github.com/daxida/grs/internal/markdown"
	"github.com/daxida/grs/internal/output"
	"github.com/daxida/grs/internal/rule"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: grs <command> [flags] [files...]

Commands:
  check      Check Greek text for spelling errors (.txt and .md files)
  monotonic  Convert text files to monotonic Greek in place
  rules      List the available rules
  version    Print version and exit

Global flags:
  -h, --help      Show this help

Run 'grs <command> --help' for more information on a command.
`

func run() int {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	switch os.Args[1] {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	switch os.Args[1] {
	case "check":
		return runCheck(os.Args[2:])
	case "monotonic":
		return runMonotonic(os.Args[2:])
	case "rules":
		return runRules(os.Args[2:])
	case "version":
		printVersion()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "grs: unknown command %q\n\n%s", os.Args[1], usageText)
		return 2
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("grs %s\n", version)
}

// runRules lists every rule with its code and capabilities.
func runRules(args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "grs: rules takes no arguments\n")
		return 2
	}
	for _, r := range rule.All() {
		fixable := " "
		if r.HasFix() {
			fixable = "*"
		}
		fmt.Printf("%-4s [%s] %s\n", r.Code(), fixable, r.Name())
	}
	return 0
}

type checkOptions struct {
	selectCodes []string
	ignoreCodes []string
	fix         bool
	diff        bool
	statistics  bool
	format      string
	configPath  string
	verbose     bool
}

// runCheck implements the "check" subcommand.
func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	var (
		opts    checkOptions
		noColor bool
	)

	fs.StringSliceVar(&opts.selectCodes, "select", nil, "Comma-separated rule codes to check, or ALL")
	fs.StringSliceVar(&opts.ignoreCodes, "ignore", nil, "Comma-separated rule codes to ignore")
	fs.BoolVar(&opts.fix, "fix", false, "Rewrite the input files with the errors fixed")
	fs.BoolVar(&opts.diff, "diff", false, "Show differences between original and corrected text")
	fs.BoolVar(&opts.statistics, "statistics", false, "Show statistics after processing")
	fs.StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	fs.StringVarP(&opts.configPath, "config", "c", "", "Override config file path")
	fs.BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: grs check [flags] [files...]\n\n"+
			"Check Greek text for spelling errors.\n\n"+
			"Anything other than .txt and .md files is ignored. With no file\n"+
			"arguments, reads from stdin if piped.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if noColor {
		color.NoColor = true
	}

	files := fs.Args()
	if len(files) == 0 {
		if !isStdinPipe() {
			return 0
		}
		return checkStdin(opts)
	}
	return checkFiles(files, opts)
}

// runMonotonic implements the "monotonic" subcommand: convert files to
// monotonic Greek in place.
func runMonotonic(args []string) int {
	fs := flag.NewFlagSet("monotonic", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: grs monotonic [files...]\n\n"+
			"Convert text files to monotonic Greek in place.\n")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	files := textFiles(fs.Args(), nil)
	if len(files) == 0 {
		return 0
	}
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "grs: reading %s: %v\n", file, err)
			return 2
		}
		if err := os.WriteFile(file, []byte(greek.ToMonotonic(string(data))), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "grs: writing %s: %v\n", file, err)
			return 2
		}
	}
	fmt.Println("Successfully converted to monotonic.")
	return 0
}

// isStdinPipe reports whether stdin carries piped data rather than a
// terminal.
func isStdinPipe() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

// textFiles keeps the .txt and .md arguments that match no ignore glob.
func textFiles(args []string, cfg *config.Config) []string {
	var ignores []string
	if cfg != nil {
		ignores = cfg.Ignore
	}
	globs, err := config.CompileIgnores(ignores)
	if err != nil {
		fmt.Fprintf(os.Stderr, "grs: %v\n", err)
		return nil
	}

	var files []string
	for _, arg := range args {
		switch filepath.Ext(arg) {
		case ".txt", ".md":
			if !config.Ignored(arg, globs) {
				files = append(files, arg)
			}
		}
	}
	return files
}

// loadConfig loads configuration by either using the specified path or
// discovering a .grs.yml from the current directory.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return &config.Config{}, nil
	}
	discovered, err := config.Discover(cwd)
	if err != nil || discovered == "" {
		return &config.Config{}, nil
	}
	return config.Load(discovered)
}

// resolveRules combines the config file and the command line into the
// enabled rule set. CLI --select replaces the config selection; ignores
// from both are applied.
func resolveRules(cfg *config.Config, opts checkOptions) ([]rule.Rule, error) {
	selectCodes := cfg.Select
	if len(opts.selectCodes) > 0 {
		selectCodes = opts.selectCodes
	}
	ignoreCodes := append(append([]string{}, cfg.IgnoreRules...), opts.ignoreCodes...)
	return config.Resolve(selectCodes, ignoreCodes)
}

func newFormatter(format string) output.Formatter {
	if format == "json" {
		return &output.JSONFormatter{}
	}
	return &output.TextFormatter{}
}

func checkFiles(fileArgs []string, opts checkOptions) int {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "grs: %v\n", err)
		return 2
	}

	enabled, err := resolveRules(cfg, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "grs: %v\n", err)
		return 2
	}

	files := textFiles(fileArgs, cfg)
	if len(files) == 0 {
		return 0
	}

	logger := &log.Logger{Enabled: opts.verbose, W: os.Stderr}
	logger.Printf("enabled rules: %s", ruleCodes(enabled))

	checker := engine.NewChecker(enabled)
	fixer := engine.NewFixer(enabled, logger)
	formatter := newFormatter(opts.format)

	globalCounts := make(map[rule.Rule]int)
	remaining := 0

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "grs: reading %s: %v\n", file, err)
			return 2
		}
		text := string(data)
		isMarkdown := filepath.Ext(file) == ".md"

		switch {
		case opts.diff:
			fixed, counts, _ := fixText(fixer, text, isMarkdown)
			diff := output.NewCodeDiff(text, fixed)
			if err := diff.Format(os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "grs: error writing output: %v\n", err)
				return 2
			}
			mergeCounts(globalCounts, counts)
		case opts.fix:
			fixed, counts, aborted := fixText(fixer, text, isMarkdown)
			if err := os.WriteFile(file, []byte(fixed), 0644); err != nil {
				fmt.Fprintf(os.Stderr, "grs: writing %s: %v\n", file, err)
				return 2
			}
			if aborted {
				fmt.Fprintf(os.Stderr, "grs: %s: fixing did not converge\n", file)
				remaining++
			}
			mergeCounts(globalCounts, counts)
		default:
			diags := checkText(checker, text, isMarkdown)
			if !opts.statistics && len(diags) > 0 {
				rep := output.FileReport{File: file, Text: text, Diagnostics: diags}
				if err := formatter.Format(os.Stdout, rep); err != nil {
					fmt.Fprintf(os.Stderr, "grs: error writing output: %v\n", err)
					return 2
				}
			}
			remaining += len(diags)
			mergeCounts(globalCounts, engine.Count(diags))
		}
	}

	return report(globalCounts, remaining, opts)
}

func checkStdin(opts checkOptions) int {
	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "grs: reading stdin: %v\n", err)
		return 2
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "grs: %v\n", err)
		return 2
	}
	enabled, err := resolveRules(cfg, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "grs: %v\n", err)
		return 2
	}

	logger := &log.Logger{Enabled: opts.verbose, W: os.Stderr}

	switch {
	case opts.fix || opts.diff:
		fixer := engine.NewFixer(enabled, logger)
		res := fixer.Fix(string(text))
		if opts.diff {
			diff := output.NewCodeDiff(string(text), res.Text)
			if err := diff.Format(os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "grs: error writing output: %v\n", err)
				return 2
			}
		} else {
			fmt.Print(res.Text)
		}
		return report(res.Counts, 0, opts)
	default:
		checker := engine.NewChecker(enabled)
		diags := checker.Check(string(text))
		if !opts.statistics && len(diags) > 0 {
			rep := output.FileReport{File: "<stdin>", Text: string(text), Diagnostics: diags}
			if err := newFormatter(opts.format).Format(os.Stdout, rep); err != nil {
				fmt.Fprintf(os.Stderr, "grs: error writing output: %v\n", err)
				return 2
			}
		}
		return report(engine.Count(diags), len(diags), opts)
	}
}

func checkText(checker *engine.Checker, text string, isMarkdown bool) []lint.Diagnostic {
	if isMarkdown {
		return markdown.Check(checker, []byte(text))
	}
	return checker.Check(text)
}

func fixText(fixer *engine.Fixer, text string, isMarkdown bool) (string, map[rule.Rule]int, bool) {
	if isMarkdown {
		return markdown.Fix(fixer, []byte(text))
	}
	res := fixer.Fix(text)
	return res.Text, res.Counts, res.Aborted
}

func mergeCounts(dst, src map[rule.Rule]int) {
	for k, v := range src {
		dst[k] += v
	}
}

func ruleCodes(enabled []rule.Rule) string {
	codes := make([]string, len(enabled))
	for i, r := range enabled {
		codes[i] = r.Code()
	}
	return strings.Join(codes, ", ")
}

// report prints the statistics and the closing summary, and converts the
// outcome to an exit code.
func report(counts map[rule.Rule]int, remaining int, opts checkOptions) int {
	if opts.statistics {
		if err := output.FormatStatistics(os.Stdout, counts); err != nil {
			fmt.Fprintf(os.Stderr, "grs: error writing output: %v\n", err)
			return 2
		}
	}

	total := 0
	fixableTotal := 0
	for k, v := range counts {
		total += v
		if k.HasFix() {
			fixableTotal += v
		}
	}

	switch {
	case total == 0:
		fmt.Println("No errors!")
	case opts.fix || opts.diff:
		fmt.Printf("Fixed %d errors.\n", total)
	default:
		fmt.Printf("Found %d errors.\n[%s] %d fixable with the `--fix` option.\n",
			total, color.CyanString("*"), fixableTotal)
	}

	if remaining > 0 {
		return 1
	}
	return 0
}
