package cmd

import (
	"fmt"

	"github.com/npillmayer/seqalgo"
	"github.com/npillmayer/seqalgo/strs"
	"github.com/spf13/cobra"
)

var (
	splitCompress bool
	trimAll       bool
	trimFill      string
	trimLeft      bool
	trimRight     bool
)

var splitCmd = &cobra.Command{
	Use:   "split <separators> [text...]",
	Short: "Split text at separator characters",
	Long: `Splits text at every character contained in <separators> and prints
one token per line. With --compress adjacent separators count as one
and empty tokens at either end are dropped.

Examples:
  salgo split , "a,b,,c"
  salgo split --compress " ," "a, b,,c"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSplit,
}

var trimCmd = &cobra.Command{
	Use:   "trim [text...]",
	Short: "Remove leading and trailing white-space",
	Long: `Removes white-space from both ends of the text. With --all inner runs
of white-space are compressed to one character, with --fill they are
replaced by the given string.

Examples:
  salgo trim "  text  "
  salgo trim --fill _ "  some   text "`,
	RunE: runTrim,
}

var caseCmd = &cobra.Command{
	Use:   "case <upper|lower|title> [text...]",
	Short: "Convert text to upper, lower or title case",
	Long: `Converts text according to the casing rules of the locale.

Examples:
  salgo case upper "straße"
  salgo case --locale tr upper "istanbul"`,
	Args:      cobra.MinimumNArgs(1),
	ValidArgs: []string{"upper", "lower", "title"},
	RunE:      runCase,
}

func init() {
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(trimCmd)
	rootCmd.AddCommand(caseCmd)

	splitCmd.Flags().BoolVar(&splitCompress, "compress", false, "treat adjacent separators as one")
	trimCmd.Flags().BoolVar(&trimAll, "all", false, "compress inner white-space")
	trimCmd.Flags().StringVar(&trimFill, "fill", "", "replace inner white-space by this string")
	trimCmd.Flags().BoolVar(&trimLeft, "left", false, "trim the left end only")
	trimCmd.Flags().BoolVar(&trimRight, "right", false, "trim the right end only")
}

func runSplit(cmd *cobra.Command, args []string) error {
	compress := seqalgo.CompressOff
	if splitCompress {
		compress = seqalgo.CompressOn
	}
	out := cmd.OutOrStdout()
	return eachLine(cmd, args[1:], func(_ int, line string) error {
		for _, token := range strs.Split(line, args[0], compress) {
			fmt.Fprintln(out, token)
		}
		return nil
	})
}

func runTrim(cmd *cobra.Command, args []string) error {
	loc, err := locale()
	if err != nil {
		return err
	}
	var trim func(string) string
	switch {
	case cmd.Flags().Changed("fill"):
		trim = func(s string) string { return strs.TrimFill(s, trimFill, loc) }
	case trimAll:
		trim = func(s string) string { return strs.TrimAll(s, loc) }
	case trimLeft && !trimRight:
		trim = func(s string) string { return strs.TrimLeft(s, loc) }
	case trimRight && !trimLeft:
		trim = func(s string) string { return strs.TrimRight(s, loc) }
	default:
		trim = func(s string) string { return strs.Trim(s, loc) }
	}
	out := cmd.OutOrStdout()
	return eachLine(cmd, args, func(_ int, line string) error {
		fmt.Fprintln(out, trim(line))
		return nil
	})
}

func runCase(cmd *cobra.Command, args []string) error {
	loc, err := locale()
	if err != nil {
		return err
	}
	var convert func(string, *seqalgo.Locale) string
	switch args[0] {
	case "upper":
		convert = strs.ToUpper
	case "lower":
		convert = strs.ToLower
	case "title":
		convert = strs.Title
	default:
		return fmt.Errorf("unknown case %q: %w", args[0], seqalgo.ErrIllegalArguments)
	}
	out := cmd.OutOrStdout()
	return eachLine(cmd, args[1:], func(_ int, line string) error {
		fmt.Fprintln(out, convert(line, loc))
		return nil
	})
}
