// Command lvsearch runs BFS, UCS or A* over a state-space file and checks a
// heuristic for optimism and consistency.
//
//	lvsearch --alg ucs --ss maps/istra.txt
//	lvsearch --alg astar --ss maps/istra.txt --h maps/istra_h.txt --check-consistent
//	lvsearch compare --ss maps/istra.txt --h maps/istra_h.txt
package main

import (
	"context"
	"fmt"
	"io"
	"os"
)

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "lvsearch:", err)
		os.Exit(1)
	}
}

// run builds the command tree and executes it with args.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	return cmd.ExecuteContext(ctx)
}
