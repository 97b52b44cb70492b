// Command unblackedges removes black-edge scanner artifacts from a plain
// PBM (P1) image.
//
// Usage:
//
//	unblackedges [file]
//
// With no argument the image is read from standard input. A file ending in
// ".zst" is decompressed first. The cleaned image is written to standard
// output as P1. Any error exits with status 1 and no output.
package main

import (
	"bufio"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/pbmclean/pbm"
	"github.com/katalvlaran/pbmclean/unblack"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process globals; it returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "unblackedges: ", 0)

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
		logger.Printf("usage: unblackedges [input_file]")
		return 1
	}

	bm, err := pbm.ReadBit(bufio.NewReader(in))
	if err != nil {
		logger.Printf("%v", err)
		return 1
	}
	if _, err := unblack.Unblack(bm); err != nil {
		logger.Printf("%v", err)
		return 1
	}
	if err := pbm.WriteBit(stdout, bm); err != nil {
		logger.Printf("write: %v", err)
		return 1
	}

	return 0
}
