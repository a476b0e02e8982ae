// Package main runs a small qtensor demonstration: it squares an identity
// matrix, prints it, pokes one cell and prints a scaled copy.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/golang/glog"

	"github.com/born-ml/qtensor/parallel"
	"github.com/born-ml/qtensor/tensor"
)

const version = "v0.1.0"

var (
	size        = flag.Int("size", 5, "edge length of the identity matrix")
	scale       = flag.Float64("scale", 3.0, "factor applied to every element of the poked matrix")
	useParallel = flag.Bool("parallel", false, "spread the multiply over all CPUs")
	showVersion = flag.Bool("version", false, "print version and exit")
)

func main() {
	if err := flag.Set("logtostderr", "true"); err != nil {
		log.Warningf("qtensor: %v", err)
	}
	flag.Parse()
	defer log.Flush()

	if *showVersion {
		fmt.Printf("qtensor %s\n", version)
		return
	}

	if err := run(os.Stdout, *size, *scale, *useParallel); err != nil {
		log.Exitf("qtensor: %v", err)
	}
}

func run(w io.Writer, n int, factor float64, par bool) error {
	cfg := parallel.Sequential()
	if par {
		cfg = parallel.DefaultConfig()
	}

	first, err := tensor.Identity(n, 2)
	if err != nil {
		return err
	}
	if n == 0 {
		log.Infof("empty identity, nothing to print")
		return nil
	}
	second := first.Clone()

	log.Infof("multiplying %v identity matrices (parallel=%t)", first.Shape(), cfg.Enabled)
	res, err := first.TimesWith(second, cfg)
	if err != nil {
		return err
	}
	if err := res.Fprint(w); err != nil {
		return err
	}

	poked, err := res.With(-1, 0, 0)
	if err != nil {
		return err
	}

	log.Infof("scaling by %g", factor)
	return poked.ApplyFunction(func(v float64) float64 { return v * factor }).Fprint(w)
}
