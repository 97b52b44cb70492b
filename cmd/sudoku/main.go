// Command sudoku reports, through its exit status, whether a 9×9 plain
// graymap (P2, maxval 9) holds a solved Sudoku.
//
// Usage:
//
//	sudoku [file]
//
// Exit status 0 means solved; 1 means unsolved, malformed or unreadable.
// Nothing is written to standard output.
package main

import (
	"bufio"
	"errors"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/pbmclean/pbm"
	"github.com/katalvlaran/pbmclean/sudoku"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stderr))
}

// run is main without the process globals; it returns the exit status.
// An unsolved board is an answer, not a fault, so it is not logged.
func run(args []string, stdin io.Reader, stderr io.Writer) int {
	logger := log.New(stderr, "sudoku: ", 0)

	in := stdin
	switch len(args) {
	case 0:
	case 1:
		f, err := pbm.Open(args[0])
		if err != nil {
			logger.Printf("could not open %s: %v", args[0], err)
			return 1
		}
		defer f.Close()
		in = f
	default:
		logger.Printf("usage: sudoku [input_file]")
		return 1
	}

	board, err := sudoku.Read(bufio.NewReader(in))
	if err != nil {
		logger.Printf("%v", err)
		return 1
	}
	if err := sudoku.Validate(board); err != nil {
		if !errors.Is(err, sudoku.ErrUnsolved) {
			logger.Printf("%v", err)
		}
		return 1
	}

	return 0
}
