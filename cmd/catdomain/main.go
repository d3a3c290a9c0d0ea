package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/varmodel/catdomain/domain"
	"github.com/varmodel/catdomain/store"
)

func main() {
	var (
		input       = flag.String("input", "", "Path to a text file to ingest")
		minCount    = flag.Uint64("min-count", 0, "Trim values seen fewer times than this")
		maxSize     = flag.Int("max-size", 0, "Trim the vocabulary to at most this many values")
		top         = flag.Int("top", 20, "Number of ranked values to print")
		dbPath      = flag.String("db", "", "Snapshot store directory")
		save        = flag.String("save", "", "Save the vocabulary under this snapshot name")
		load        = flag.String("load", "", "Load a previously saved snapshot before ingesting")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *input == "" && *load == "" {
		fmt.Fprintln(os.Stderr, "Usage: catdomain -input <file.txt> [-min-count n | -max-size n] [-top n]")
		fmt.Fprintln(os.Stderr, "       catdomain -input <file.txt> -db <dir> -save <name>")
		fmt.Fprintln(os.Stderr, "       catdomain -db <dir> -load <name> [-i]")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		domain.SetLogger(logger)
	}

	if err := run(*input, *dbPath, *save, *load, *minCount, int32(*maxSize), *top, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(input, dbPath, save, load string, minCount uint64, maxSize int32, top int, interactive bool) error {
	var st *store.Store
	if dbPath != "" {
		cfg := store.DefaultConfig(dbPath)
		var err error
		st, err = store.Open(cfg)
		if err != nil {
			return err
		}
		defer st.Close()
	}

	reg := domain.NewCountingRegistry[string]()
	if load != "" {
		if st == nil {
			return fmt.Errorf("-load requires -db")
		}
		var err error
		reg, err = st.LoadSnapshot(load)
		if err != nil {
			return err
		}
		fmt.Printf("Loaded snapshot %q: %d values\n", load, reg.AllocSize())
	}

	if input != "" {
		total, err := ingestFile(reg, input)
		if err != nil {
			return err
		}
		fmt.Printf("Ingested: %s\n", input)
		fmt.Printf("Tokens: %d\n", total)
		fmt.Printf("Distinct values: %d\n", reg.AllocSize())
	}

	if minCount > 0 {
		if err := reg.TrimBelowCount(minCount); err != nil {
			return err
		}
		fmt.Printf("Trimmed below count %d: %d values remain\n", minCount, reg.AllocSize())
	}
	if maxSize > 0 {
		if err := reg.TrimToSize(maxSize); err != nil {
			return err
		}
		fmt.Printf("Trimmed to size %d\n", reg.AllocSize())
	}

	if interactive {
		return runInteractive(reg)
	}

	printRanked(reg, top)

	if save != "" {
		if st == nil {
			return fmt.Errorf("-save requires -db")
		}
		if err := st.SaveSnapshot(save, reg); err != nil {
			return err
		}
		fmt.Printf("Saved snapshot %q\n", save)
	}
	return nil
}

func ingestFile(reg *domain.CountingRegistry[string], path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read file: %w", err)
	}

	tokens := strings.Fields(string(data))
	for _, tok := range tokens {
		reg.Index(strings.ToLower(strings.Trim(tok, ".,;:!?\"'()[]")))
	}
	return len(tokens), nil
}

// vocabEntry pairs one interned value with its index and count.
type vocabEntry struct {
	value string
	index int32
	count uint64
}

func ranked(reg *domain.CountingRegistry[string]) []vocabEntry {
	values := reg.Values()
	counts := reg.Counts()

	entries := make([]vocabEntry, len(values))
	for i := range values {
		entries[i] = vocabEntry{value: values[i], index: int32(i), count: counts[i]}
	}
	sort.Slice(entries, func(a, b int) bool {
		if entries[a].count != entries[b].count {
			return entries[a].count > entries[b].count
		}
		return entries[a].index < entries[b].index
	})
	return entries
}

func printRanked(reg *domain.CountingRegistry[string], top int) {
	entries := ranked(reg)
	if top > 0 && len(entries) > top {
		entries = entries[:top]
	}

	fmt.Printf("\n%-6s %-10s %s\n", "index", "count", "value")
	for _, e := range entries {
		fmt.Printf("%-6d %-10d %s\n", e.index, e.count, e.value)
	}
}
