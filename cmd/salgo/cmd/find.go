package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/seqalgo"
	"github.com/npillmayer/seqalgo/multi"
	"github.com/npillmayer/seqalgo/strs"
	"github.com/npillmayer/seqalgo/textfile"
	"github.com/npillmayer/uax/uax11"
	"github.com/spf13/cobra"
)

var (
	findNth    int
	grepAny    bool
	grepNoTrim bool
)

var findCmd = &cobra.Command{
	Use:   "find <pattern> [text...]",
	Short: "Find occurrences of a pattern",
	Long: `Prints every occurrence of a pattern as line:column:match.

Examples:
  salgo find wor "hello world"
  salgo find -i --nth 1 worD "hello word Word"
  salgo find --nth -1 a "banana"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFind,
}

var grepCmd = &cobra.Command{
	Use:   "grep <pattern> <file>...",
	Short: "Print lines of files containing a pattern",
	Long: `Prints the lines of text files containing a pattern, with matches
highlighted. With --any the pattern is a comma separated list of
alternatives, any of which may match.

Examples:
  salgo grep TODO *.go
  salgo grep --any foo,bar,baz notes.txt`,
	Args: cobra.MinimumNArgs(2),
	RunE: runGrep,
}

func init() {
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(grepCmd)

	findCmd.Flags().IntVar(&findNth, "nth", 0, "report only the nth occurrence (negative: count from the end)")
	grepCmd.Flags().BoolVar(&grepAny, "any", false, "pattern is a comma separated list of alternatives")
	grepCmd.Flags().BoolVar(&grepNoTrim, "no-truncate", false, "do not truncate lines to the terminal width")
}

// span is a match given as byte offsets into a line.
type span struct {
	from, to int
}

// matcher finds all matches within a line.
type matcher func(line string) []span

func runeMatcher(f seqalgo.Finder[rune]) matcher {
	return func(line string) []span {
		rs := []rune(line)
		var spans []span
		for m := range seqalgo.Matches(seqalgo.Of(rs), f) {
			spans = append(spans, span{byteOffset(rs, m.Begin()), byteOffset(rs, m.End())})
		}
		return spans
	}
}

func byteMatcher(f seqalgo.Finder[byte]) matcher {
	return func(line string) []span {
		var spans []span
		for m := range seqalgo.Matches(seqalgo.Of([]byte(line)), f) {
			spans = append(spans, span{m.Begin(), m.End()})
		}
		return spans
	}
}

func byteOffset(rs []rune, pos int) int {
	return len(string(rs[:pos]))
}

var matchColor = color.New(color.FgRed, color.Bold)

// highlight renders line with all spans highlighted.
func highlight(line string, spans []span) string {
	var b strings.Builder
	last := 0
	for _, s := range spans {
		b.WriteString(line[last:s.from])
		b.WriteString(matchColor.Sprint(line[s.from:s.to]))
		last = s.to
	}
	b.WriteString(line[last:])
	return b.String()
}

func runFind(cmd *cobra.Command, args []string) error {
	cmp, err := comparator()
	if err != nil {
		return err
	}
	pattern := []rune(args[0])
	var m matcher
	if cmd.Flags().Changed("nth") {
		m = runeMatcher(seqalgo.NthFinder(pattern, findNth, cmp))
	} else {
		m = runeMatcher(seqalgo.FirstFinder(pattern, cmp))
	}
	out := cmd.OutOrStdout()
	return eachLine(cmd, args[1:], func(n int, line string) error {
		for _, s := range m(line) {
			col := len([]rune(line[:s.from])) + 1
			fmt.Fprintf(out, "%d:%d:%s\n", n, col, matchColor.Sprint(line[s.from:s.to]))
			if cmd.Flags().Changed("nth") {
				break
			}
		}
		return nil
	})
}

func grepMatcher(pattern string) (matcher, error) {
	if grepAny {
		if ignoreCase {
			return nil, fmt.Errorf("--any cannot be combined with --ignore-case: %w", seqalgo.ErrIllegalArguments)
		}
		d, err := multi.NewDictionary(strings.Split(pattern, ",")...)
		if err != nil {
			return nil, err
		}
		return byteMatcher(d.Finder()), nil
	}
	cmp, err := comparator()
	if err != nil {
		return nil, err
	}
	return runeMatcher(seqalgo.FirstFinder([]rune(pattern), cmp)), nil
}

func runGrep(cmd *cobra.Command, args []string) error {
	m, err := grepMatcher(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	width := 0
	if !grepNoTrim {
		width = terminalWidth(out)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	for _, name := range args[1:] {
		tf, err := textfile.Open(name, 0)
		if err != nil {
			return err
		}
		for n, line := range tf.Lines(ctx) {
			spans := m(line)
			if len(spans) == 0 {
				continue
			}
			prefix := fmt.Sprintf("%s:%d:", name, n+1)
			if width > 0 {
				line, spans = fitLine(line, spans, width-len(prefix))
			}
			fmt.Fprintf(out, "%s%s\n", prefix, highlight(line, spans))
		}
		if err := finishFile(tf); err != nil {
			return err
		}
	}
	return nil
}

// finishFile closes tf and returns the loading error, if any, or else the
// error from closing.
func finishFile(tf *textfile.File) error {
	err := tf.Err()
	if cerr := tf.Close(); err == nil {
		err = cerr
	}
	return err
}

// fitLine truncates line to at most width display cells, keeping whole
// grapheme clusters. Spans are clipped to the truncated line.
func fitLine(line string, spans []span, width int) (string, []span) {
	ctx := uax11.ContextFromEnvironment()
	if width <= 0 || strs.Width(line, ctx) <= width {
		return line, spans
	}
	var b strings.Builder
	w := 0
	for _, g := range strs.Graphemes(line) {
		gw := strs.Width(g, ctx)
		if w+gw > width-1 {
			break
		}
		b.WriteString(g)
		w += gw
	}
	cut := b.Len()
	clipped := spans[:0:0]
	for _, s := range spans {
		if s.from >= cut {
			break
		}
		clipped = append(clipped, span{s.from, min(s.to, cut)})
	}
	return b.String() + "…", clipped
}
