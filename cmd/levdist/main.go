// Command levdist prints the Levenshtein distance between two strings.
//
// Usage:
//
//	levdist [-k N] [-kernel name] <a> <b>
//
// -k bounds the computation: the output is "> N" if the true distance
// exceeds N. -kernel forces a specific kernel (myers, mbleven, wf) instead
// of letting the dispatcher choose, for differential testing across ports.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/deepteams/leven"
)

func main() {
	k := flag.Int("k", -1, "bound the distance computation; -1 means unbounded")
	kernel := flag.String("kernel", "", "force a kernel: myers, mbleven, or wf (default: let the dispatcher choose)")
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() != 2 {
		printUsage()
		os.Exit(1)
	}
	a, b := flag.Arg(0), flag.Arg(1)

	result, err := run(a, b, *k, *kernel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "levdist:", err)
		os.Exit(1)
	}
	fmt.Println(result)
}

func run(a, b string, k int, kernel string) (string, error) {
	switch kernel {
	case "":
		if k < 0 {
			dist, err := leven.DistanceErr(a, b)
			if err != nil {
				return "", err
			}
			return fmt.Sprint(dist), nil
		}
		dist, err := leven.DistanceBoundErr(a, b, k)
		if err != nil {
			return "", err
		}
		if dist > k {
			return fmt.Sprintf("> %d", k), nil
		}
		return fmt.Sprint(dist), nil
	case "myers":
		return fmt.Sprint(leven.DistanceMyers(a, b)), nil
	case "mbleven":
		if k <= 0 || k > 3 {
			return "", fmt.Errorf("-kernel=mbleven requires -k in {1,2,3}")
		}
		return fmt.Sprint(leven.DistanceMbleven(a, b, k)), nil
	case "wf":
		return fmt.Sprint(leven.DistanceWagnerFischer(a, b)), nil
	default:
		return "", fmt.Errorf("unknown kernel %q", kernel)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "usage: levdist [-k N] [-kernel name] <a> <b>\n\n")
	flag.PrintDefaults()
}
