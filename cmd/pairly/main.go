package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/gops/agent"
	"github.com/viant/pairly/fs"
	"github.com/viant/pairly/service"
)

func main() {
	startGops()
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "stats":
		statsCmd(os.Args[2:])
	case "batches":
		batchesCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: pairly <command> [options]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  stats    Load a dataset and print corpus statistics")
	fmt.Fprintln(os.Stderr, "  batches  Iterate batches and print their shapes")
}

func statsCmd(args []string) {
	flags := flag.NewFlagSet("stats", flag.ExitOnError)
	configURL := flags.String("config", "", "config yaml URL (required)")
	flags.Parse(args)
	if *configURL == "" {
		flags.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := mustService(ctx, *configURL)
	positives := 0
	for _, example := range srv.Examples() {
		if example.Positive() {
			positives++
		}
	}
	fmt.Printf("vocabulary: %d terms\n", len(srv.Vocabulary()))
	fmt.Printf("characters: %d\n", len(srv.Chars()))
	fmt.Printf("answers:    %d\n", srv.Answers().Size())
	fmt.Printf("examples:   %d (%d positive, %d negative)\n", len(srv.Examples()), positives, len(srv.Examples())-positives)
}

func batchesCmd(args []string) {
	flags := flag.NewFlagSet("batches", flag.ExitOnError)
	configURL := flags.String("config", "", "config yaml URL (required)")
	limit := flags.Int("limit", 0, "stop after N batches (0 = all)")
	flags.Parse(args)
	if *configURL == "" {
		flags.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := mustService(ctx, *configURL)
	generator := srv.Generator()
	fmt.Printf("batches per epoch: %d\n", generator.BatchesPerEpoch())
	for {
		b, ok := generator.Next()
		if !ok {
			break
		}
		fmt.Printf("epoch=%d batch=%d rows=%d\n", generator.Epoch(), generator.Produced(), b.Size())
		if *limit > 0 && generator.Produced() >= *limit {
			break
		}
	}
}

func mustService(ctx context.Context, configURL string) *service.Service {
	fsys := fs.NewAFS()
	config, err := service.LoadConfig(ctx, fsys, configURL)
	if err != nil {
		log.Fatal(err)
	}
	srv, err := service.New(ctx, config, service.WithFS(fsys))
	if err != nil {
		log.Fatal(err)
	}
	return srv
}

func startGops() {
	if err := agent.Listen(agent.Options{ShutdownCleanup: true}); err != nil {
		log.Printf("gops: %v", err)
	}
}
