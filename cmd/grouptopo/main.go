// Command grouptopo runs the grouped topological sort pipeline against a
// JSON target list, printing the resulting hoist list as JSON.
package main

import (
	"fmt"
	"os"

	"github.com/grouptopo/grouptopo/cmd/grouptopo/internal/app"
)

func main() {
	os.Exit(run())
}

// run wraps app.Execute so a panicking invariant check (a bug in the engine
// itself, never a user-facing condition) is distinguished from an ordinary
// input error: exit 2 for the former, exit 1 for the latter, 0 on success.
func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "grouptopo: internal invariant violation: %v\n", r)
			code = 2
		}
	}()

	if err := app.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}
