package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/seqalgo"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	ignoreCase bool
	localeID   string
	traceLevel string
	colorMode  string
)

var rootCmd = &cobra.Command{
	Use:   "salgo",
	Short: "salgo - sequence algorithms for text",
	Long: `salgo searches, replaces, splits, trims and case-converts text.

Text is taken from the arguments or, if there are none, line by line
from stdin. Case-insensitive operations respect the casing rules of
the locale given with --locale (default: from the environment).`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the salgo command line.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "compare case-insensitively")
	rootCmd.PersistentFlags().StringVar(&localeID, "locale", "", "locale for case handling, e.g. 'tr' or 'de_DE.UTF-8'")
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "", "trace level: error, info or debug")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "highlight matches: auto, always or never")
}

func setup(cmd *cobra.Command, args []string) error {
	if traceLevel != "" {
		gtrace.CoreTracer = gologadapter.New()
		switch strings.ToLower(traceLevel) {
		case "debug":
			gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
		case "info":
			gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
		case "error":
			gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
		default:
			return fmt.Errorf("unknown trace level %q: %w", traceLevel, seqalgo.ErrIllegalArguments)
		}
	}
	switch colorMode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(cmd.OutOrStdout())
	default:
		return fmt.Errorf("unknown color mode %q: %w", colorMode, seqalgo.ErrIllegalArguments)
	}
	return nil
}

// --- Helpers ---------------------------------------------------------------

func locale() (*seqalgo.Locale, error) {
	if localeID == "" {
		return seqalgo.DefaultLocale(), nil
	}
	return seqalgo.NewLocale(localeID)
}

// comparator returns the rune comparator selected by the flags.
func comparator() (seqalgo.Comparator[rune], error) {
	if !ignoreCase {
		return seqalgo.Ordinal[rune](), nil
	}
	loc, err := locale()
	if err != nil {
		return nil, err
	}
	return seqalgo.IEqual(loc), nil
}

// eachLine calls fn for the text given as arguments, or else for every line
// of the command's input.
func eachLine(cmd *cobra.Command, args []string, fn func(n int, line string) error) error {
	if len(args) > 0 {
		return fn(1, strings.Join(args, " "))
	}
	scanner := bufio.NewScanner(cmd.InOrStdin())
	n := 0
	for scanner.Scan() {
		n++
		if err := fn(n, scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of the terminal w is connected to, or 0 if w
// is not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
