// Command divsufsort exercises the divsufsort engine against a file: it
// computes either the suffix array or the Burrows-Wheeler transform of the
// input and writes the result to stdout (or an output file).
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/gosaca/divsufsort/divsufsort"
)

const (
	errBadArgs   = 1
	errReadInput = 2
	errWrite     = 3
	errCompute   = 4
)

type verboseListener struct{}

func (verboseListener) ProcessEvent(evt *divsufsort.Event) {
	printOut(evt.String(), true)
}

func printOut(msg string, print bool) {
	if print {
		fmt.Fprintln(os.Stderr, msg)
	}
}

func main() {
	var mode = flag.String("mode", "sa", "computation to run [sa|bwt]")
	var inputName = flag.String("input", "", "mandatory name of the input file")
	var outputName = flag.String("output", "", "optional name of the output file (defaults to stdout)")
	var verbose = flag.Bool("verbose", false, "display a line per computation phase")
	var jobs = flag.Uint("jobs", 1, "number of concurrent jobs used to invert a chunked BWT")

	flag.Parse()

	if *inputName == "" {
		printOut("-input=<inputName> is mandatory", true)
		os.Exit(errBadArgs)
	}

	if *mode != "sa" && *mode != "bwt" {
		printOut("-mode must be one of [sa|bwt]", true)
		os.Exit(errBadArgs)
	}

	src, err := ioutil.ReadFile(*inputName)

	if err != nil {
		printOut(fmt.Sprintf("Cannot read %v: %v", *inputName, err), true)
		os.Exit(errReadInput)
	}

	if len(src) == 0 {
		os.Exit(0)
	}

	start := time.Now()
	var out []byte

	if *mode == "sa" {
		out, err = runSuffixArray(src, *verbose)
	} else {
		out, err = runBWT(src, *verbose, *jobs)
	}

	if err != nil {
		printOut(fmt.Sprintf("Computation failed: %v", err), true)
		os.Exit(errCompute)
	}

	if *verbose {
		printOut(fmt.Sprintf("Elapsed: %v", time.Since(start)), true)
	}

	if *outputName == "" {
		os.Stdout.Write(out)
		return
	}

	if err := ioutil.WriteFile(*outputName, out, 0644); err != nil {
		printOut(fmt.Sprintf("Cannot write %v: %v", *outputName, err), true)
		os.Exit(errWrite)
	}
}

// runSuffixArray computes the suffix array of src and serializes it as
// little-endian int32 entries.
func runSuffixArray(src []byte, verbose bool) ([]byte, error) {
	sa := make([]int32, len(src))

	// The engine requires at least two symbols to bootstrap type B*
	// suffixes; a single-byte input trivially has suffix array [0].
	if len(src) < 2 {
		if len(src) == 1 {
			sa[0] = 0
		}

		return sa32ToBytes(sa), nil
	}

	engine := divsufsort.NewDivSufSort()

	if verbose {
		engine.AddListener(verboseListener{})
	}

	if err := engine.ComputeSuffixArray(src, sa, 0, int32(len(src))); err != nil {
		return nil, err
	}

	return sa32ToBytes(sa), nil
}

func sa32ToBytes(sa []int32) []byte {
	out := make([]byte, 4*len(sa))

	for i, v := range sa {
		binary.LittleEndian.PutUint32(out[4*i:], uint32(v))
	}

	return out
}

// runBWT computes the Burrows-Wheeler transform of src and prefixes the
// output with the little-endian uint32 primary index.
func runBWT(src []byte, verbose bool, jobs uint) ([]byte, error) {
	bwt := divsufsort.NewBWTWithJobs(jobs)
	dst := make([]byte, len(src))

	if verbose {
		bwt.AddListener(verboseListener{})
	}

	if _, _, err := bwt.Forward(src, dst); err != nil {
		return nil, err
	}

	out := make([]byte, 4+len(dst))
	binary.LittleEndian.PutUint32(out, uint32(bwt.PrimaryIndex(0)))
	copy(out[4:], dst)
	return out, nil
}
