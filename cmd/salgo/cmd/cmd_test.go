package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/seqalgo/textfile"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// salgo runs the command line with args and stdin and returns its output.
func salgo(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("salgo %v failed: %v", args, err)
	}
	return out.String()
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestFind(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	if out := salgo(t, "", "find", "a", "banana"); out != "1:2:a\n1:4:a\n1:6:a\n" {
		t.Errorf("find: unexpected output %q", out)
	}
	if out := salgo(t, "", "find", "-i", "--nth", "1", "worD", "hello word Word"); out != "1:12:Word\n" {
		t.Errorf("find --nth: unexpected output %q", out)
	}
	if out := salgo(t, "ab\nxx\nba\n", "find", "b"); out != "1:2:b\n3:1:b\n" {
		t.Errorf("find on stdin: unexpected output %q", out)
	}
}

func TestReplace(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	if out := salgo(t, "", "replace", "--nth", "-1", "a", "A", "banana"); out != "bananA\n" {
		t.Errorf("replace --nth: unexpected output %q", out)
	}
	if out := salgo(t, "", "replace", "--strategy", "splice", "-i", "Hello", "bye", "Hello hello"); out != "bye bye\n" {
		t.Errorf("replace --strategy splice: unexpected output %q", out)
	}
	if out := salgo(t, "", "replace", "an", "", "banana"); out != "ba\n" {
		t.Errorf("replace with empty format: unexpected output %q", out)
	}
	if out := salgo(t, "<p title=\"foo\">foo</p>", "replace", "--html", "foo", "bar"); out != "<p title=\"foo\">bar</p>\n" {
		t.Errorf("replace --html: unexpected output %q", out)
	}
}

func TestSplitTrimCase(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	if out := salgo(t, "", "split", ",", "a,b,,c"); out != "a\nb\n\nc\n" {
		t.Errorf("split: unexpected output %q", out)
	}
	if out := salgo(t, "", "split", "--compress", " ,", "a, b,,c"); out != "a\nb\nc\n" {
		t.Errorf("split --compress: unexpected output %q", out)
	}
	if out := salgo(t, "", "trim", "--fill", "_", "  some   text "); out != "some_text\n" {
		t.Errorf("trim --fill: unexpected output %q", out)
	}
	if out := salgo(t, "  x  \n", "trim", "--left"); out != "x  \n" {
		t.Errorf("trim --left: unexpected output %q", out)
	}
	if out := salgo(t, "", "case", "--locale", "tr", "upper", "istanbul"); out != "İSTANBUL\n" {
		t.Errorf("case upper: unexpected output %q", out)
	}
	if out := salgo(t, "", "case", "title", "hello world"); out != "Hello World\n" {
		t.Errorf("case title: unexpected output %q", out)
	}
}

func TestGrep(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	name := filepath.Join(t.TempDir(), "grep.txt")
	if err := os.WriteFile(name, []byte("one\nfoo bar\nthree\nbaz\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if out := salgo(t, "", "grep", "foo", name); out != name+":2:foo bar\n" {
		t.Errorf("grep: unexpected output %q", out)
	}
	expected := name + ":2:foo bar\n" + name + ":4:baz\n"
	if out := salgo(t, "", "grep", "--any", "foo,baz", name); out != expected {
		t.Errorf("grep --any: unexpected output %q", out)
	}
}

func TestFinishFileReportsCloseError(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	name := filepath.Join(t.TempDir(), "lines.txt")
	if err := os.WriteFile(name, []byte("a\nb\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tf, err := textfile.Open(name, 0)
	if err != nil {
		t.Fatal(err)
	}
	for range tf.Lines(context.Background()) {
	}
	if err := finishFile(tf); err != nil {
		t.Errorf("expected clean finish, have %v", err)
	}
	if err := finishFile(tf); !errors.Is(err, os.ErrClosed) {
		t.Errorf("expected the error of closing a closed file, have %v", err)
	}
}

func TestFitLine(t *testing.T) {
	line, spans := fitLine("abcdefghij", []span{{1, 3}, {8, 10}}, 6)
	if line != "abcde…" {
		t.Errorf("expected line to be truncated to 'abcde…', is %q", line)
	}
	if len(spans) != 1 || spans[0] != (span{1, 3}) {
		t.Errorf("expected spans to be clipped, have %v", spans)
	}
}
