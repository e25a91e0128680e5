// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// hera builds scaffold sequences from a set of contigs, long reads,
// and their pairwise overlaps, by walking an overlap graph from
// anchor to anchor through chains of reads.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/kortschak/hera/fastaio"
	"github.com/kortschak/hera/graph"
	"github.com/kortschak/hera/overlap"
	"github.com/kortschak/hera/paf"
	"github.com/kortschak/hera/report"
	"github.com/kortschak/hera/scaffold"
	"github.com/kortschak/hera/search"
)

var (
	output     = flag.String("o", "scaffolds.fasta", "output scaffold FASTA file name")
	outputLong = flag.String("output", "", "long form of -o")

	threads     = flag.Int("t", 1, "number of worker goroutines for the read/read overlap stage")
	threadsLong = flag.Int("threads", 0, "long form of -t")

	seed = flag.Int64("seed", 1, "Monte-Carlo random seed, recorded in the log for reproducibility")

	plotOut = flag.String("plot", "", "write a scaffold-length histogram to this file (optional)")
	logFile = flag.String("log", "", "log file name (default stderr)")
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: hera scaffold <contigs> <reads> <contig-read PAF> <read-read PAF> [options]

`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *logFile != "" {
		w, err := os.Create(*logFile)
		if err != nil {
			log.Fatalf("failed to create log file: %v", err)
		}
		defer w.Close()
		log.SetOutput(w)
	}

	args := flag.Args()
	if len(args) != 5 || args[0] != "scaffold" {
		usage()
		os.Exit(1)
	}
	contigsFile, readsFile, crFile, rrFile := args[1], args[2], args[3], args[4]

	out := *output
	if *outputLong != "" {
		out = *outputLong
	}
	numThreads := *threads
	if *threadsLong != 0 {
		numThreads = *threadsLong
	}

	log.Printf("command: %s", strings.Join(os.Args, " "))
	log.Printf("hera scaffold: contigs=%q reads=%q cr-overlaps=%q rr-overlaps=%q threads=%d seed=%d",
		contigsFile, readsFile, crFile, rrFile, numThreads, *seed)

	if err := run(contigsFile, readsFile, crFile, rrFile, out, numThreads, *seed, *plotOut); err != nil {
		log.Fatalf("hera: %v", err)
	}
}

func run(contigsFile, readsFile, crFile, rrFile, out string, numThreads int, seed int64, plotPath string) error {
	log.Printf("loading contigs from %q", contigsFile)
	contigs, err := fastaio.Load(contigsFile)
	if err != nil {
		return fmt.Errorf("loading contigs: %w", err)
	}
	log.Printf("loading reads from %q", readsFile)
	reads, err := fastaio.Load(readsFile)
	if err != nil {
		return fmt.Errorf("loading reads: %w", err)
	}

	g := graph.NewGraph()
	for _, s := range contigs {
		g.AddAnchor(s)
	}
	for _, s := range reads {
		g.AddRead(s)
	}

	log.Printf("loading contig/read overlaps from %q", crFile)
	crRecs, err := readPAF(crFile)
	if err != nil {
		return err
	}
	discard := make(map[string]bool)
	opt := overlap.DefaultOptions()

	crStats, crErrs := g.BuildContigRead(crRecs, discard, opt)
	logErrs("contig/read overlap", crErrs)
	log.Printf("contig/read overlaps: %d usable, %d contained, %d short, %d low-quality, %d zero-extension (of %d total)",
		crStats.Usable, crStats.Contained, crStats.Short, crStats.LowQuality, crStats.ZeroExtension, crStats.Total)
	log.Printf("%d anchor nodes isolated after the contig/read stage", len(crStats.Isolated))

	log.Printf("loading read/read overlaps from %q", rrFile)
	rrRecs, err := readPAF(rrFile)
	if err != nil {
		return err
	}
	rrStats, rrErrs := g.BuildReadRead(rrRecs, discard, opt, numThreads)
	logErrs("read/read overlap", rrErrs)
	log.Printf("read/read overlaps: %d usable, %d contained, %d short, %d low-quality, %d zero-extension (of %d total)",
		rrStats.Usable, rrStats.Contained, rrStats.Short, rrStats.LowQuality, rrStats.ZeroExtension, rrStats.Total)

	log.Printf("cleaning up graph: %d reads flagged for discard", len(discard))
	g.DiscardReads(discard)
	g.RetainBestAnchorPerRead()

	log.Print("searching for anchor-to-anchor paths")
	paths1 := search.GreedyByOverlapScore(g)
	log.Printf("greedy-by-overlap-score: %d paths", len(paths1))
	paths2 := search.GreedyByExtensionScore(g)
	log.Printf("greedy-by-extension-score: %d paths", len(paths2))
	numMC := 2 * (len(paths1) + len(paths2) + 1)
	paths3 := search.MonteCarlo(g, seed, numMC)
	log.Printf("monte-carlo (seed=%d, target=%d): %d paths", seed, numMC, len(paths3))

	all := make([]search.Path, 0, len(paths1)+len(paths2)+len(paths3))
	all = append(all, paths1...)
	all = append(all, paths2...)
	all = append(all, paths3...)

	if len(all) == 0 {
		log.Print("no paths found by any strategy; emitting every anchor verbatim")
		headers, seqs, _ := scaffold.Emit(nil, g)
		log.Printf("writing %d records to %q", len(headers), out)
		return fastaio.Write(out, headers, seqs)
	}

	log.Print("grouping paths")
	groups, connected, groupErrs := scaffold.Group(all)
	logErrs("path", groupErrs)
	log.Printf("%d (sname,ename,direction) groups", len(groups))

	var isolated int
	for _, a := range g.Anchors() {
		if !connected[a.Ident()] {
			isolated++
		}
	}
	log.Printf("%d isolated anchor nodes, %d connected anchor nodes", isolated, len(connected))

	log.Print("filtering path groups")
	filtered, discardedGroups := scaffold.Filter(groups)
	log.Printf("%d groups retained, %d discarded", len(filtered), len(discardedGroups))

	log.Print("finalising representative paths")
	final := scaffold.Finalize(filtered)
	log.Printf("%d representative paths", len(final))

	chains, droppedChains, err := scaffold.ChainPaths(final)
	if err != nil {
		return fmt.Errorf("chaining paths: %w", err)
	}
	logErrs("scaffold chain", droppedChains)
	log.Printf("%d combined scaffold chains", len(chains))

	headers, seqs, emitErrs := scaffold.Emit(chains, g)
	logErrs("scaffold synthesis", emitErrs)

	if plotPath != "" && len(final) > 0 {
		lengths := make([]int, len(final))
		for i, pi := range final {
			lengths[i] = pi.Length
		}
		if err := report.LengthHistogram(lengths, plotPath); err != nil {
			log.Printf("warning: failed to write scaffold-length plot: %v", err)
		}
	}

	log.Printf("writing %d records to %q", len(headers), out)
	return fastaio.Write(out, headers, seqs)
}

func readPAF(path string) ([]*overlap.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	recs, err := paf.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return recs, nil
}

func logErrs(kind string, errs []error) {
	for _, err := range errs {
		log.Printf("warning: %s: %v", kind, err)
	}
}
