package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/notestore"
	"github.com/aretw0/notestore/internal/prompt"
)

func main() {
	count := flag.Int("count", 1000, "Number of notes to generate")
	keep := flag.Bool("keep", false, "Keep the benchmark directory after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "notestore_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	fmt.Printf("Generating %d notes in %s...\n", *count, benchDir)
	startGen := time.Now()

	// Direct writes are faster for setup and simulate an existing directory.
	for i := 0; i < *count; i++ {
		dir := filepath.Join(benchDir, "notes", fmt.Sprintf("folder_%d", i%20))
		if err := os.MkdirAll(dir, 0755); err != nil {
			panic(err)
		}
		content := fmt.Sprintf("# Benchmark Note %d\nThis is a test note written %s.", i, time.Now().Format("2006-01-02"))
		if err := os.WriteFile(filepath.Join(dir, fmt.Sprintf("note_%d.md", i)), []byte(content), 0644); err != nil {
			panic(err)
		}
	}
	fmt.Printf("Generation took: %v\n", time.Since(startGen))

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ctx := context.Background()

	results := make(map[int]time.Duration)
	levels := []int{1, 4, 16, 64}
	for _, n := range levels {
		store, err := notestore.New(ctx,
			notestore.WithLogger(logger),
			notestore.WithPicker(prompt.Fixed(benchDir)),
			notestore.WithReadConcurrency(n),
		)
		if err != nil {
			panic(err)
		}
		if _, err := store.PickDirectory(ctx); err != nil {
			panic(err)
		}

		fmt.Printf("Running GetAllNotes (concurrency %d)...\n", n)
		start := time.Now()
		notes, err := store.GetAllNotes(ctx)
		if err != nil {
			panic(err)
		}
		results[n] = time.Since(start)
		fmt.Printf("Result: %v (Items: %d)\n", results[n], len(notes))
		store.Close()
	}

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d notes):\n", *count)
	for _, n := range levels {
		fmt.Printf("  Concurrency %2d: %v\n", n, results[n])
	}
	fmt.Printf("--------------------------------------------------\n")
}
