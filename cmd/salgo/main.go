/*
Command salgo applies sequence algorithms to text from the command line.

	salgo find -i world "Hello World"
	salgo grep --any foo,bar *.txt
	salgo replace --nth -1 a A "banana"
	salgo split --compress ", " "a, b,,c"
	salgo trim --all "  lots   of   space  "
	salgo case title "hello world"

Text is taken from the arguments or, if there are none, line by line from
stdin.
*/
package main

import (
	"os"

	"github.com/npillmayer/seqalgo/cmd/salgo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
