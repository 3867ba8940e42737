package cmd

import (
	"fmt"

	"github.com/npillmayer/seqalgo"
	"github.com/npillmayer/seqalgo/htmltext"
	"github.com/spf13/cobra"
)

var (
	replaceNth      int
	replaceHTML     bool
	replaceStrategy string
)

var replaceCmd = &cobra.Command{
	Use:   "replace <search> <format> [text...]",
	Short: "Replace occurrences of a pattern",
	Long: `Replaces all occurrences of a pattern, or only the nth one with --nth.
An empty format erases the occurrences. With --html, stdin is read as an
HTML fragment and only its text is subject to replacement.

Examples:
  salgo replace -i hello bye "Hello hello"
  salgo replace --nth -1 a A "banana"
  salgo replace --html foo bar < page.html`,
	Args: cobra.MinimumNArgs(2),
	RunE: runReplace,
}

func init() {
	rootCmd.AddCommand(replaceCmd)

	replaceCmd.Flags().IntVar(&replaceNth, "nth", 0, "replace only the nth occurrence (negative: count from the end)")
	replaceCmd.Flags().BoolVar(&replaceHTML, "html", false, "replace within the text of an HTML fragment read from stdin")
	replaceCmd.Flags().StringVar(&replaceStrategy, "strategy", "drain", "in-place strategy for replace-all: drain or splice")
}

func inPlaceStrategy() (seqalgo.InPlaceStrategy, error) {
	switch replaceStrategy {
	case "drain":
		return seqalgo.DrainFlush, nil
	case "splice":
		return seqalgo.EraseInsert, nil
	}
	return 0, fmt.Errorf("unknown strategy %q: %w", replaceStrategy, seqalgo.ErrIllegalArguments)
}

func runReplace(cmd *cobra.Command, args []string) error {
	cmp, err := comparator()
	if err != nil {
		return err
	}
	strategy, err := inPlaceStrategy()
	if err != nil {
		return err
	}
	search, format := []rune(args[0]), seqalgo.ConstFormatter([]rune(args[1]))
	nth := cmd.Flags().Changed("nth")
	var finder seqalgo.Finder[rune]
	if nth {
		finder = seqalgo.NthFinder(search, replaceNth, cmp)
	} else {
		finder = seqalgo.FirstFinder(search, cmp)
	}
	out := cmd.OutOrStdout()
	if replaceHTML {
		if nth {
			return fmt.Errorf("--nth cannot be combined with --html: %w", seqalgo.ErrIllegalArguments)
		}
		if err := htmltext.ReplaceText(cmd.InOrStdin(), out, finder, format); err != nil {
			return err
		}
		fmt.Fprintln(out)
		return nil
	}
	return eachLine(cmd, args[2:], func(_ int, line string) error {
		text := []rune(line)
		if nth {
			seqalgo.FindFormat(&text, finder, format)
		} else {
			seqalgo.FindFormatAllWith(&text, finder, format, strategy)
		}
		fmt.Fprintln(out, string(text))
		return nil
	})
}
