// Package main provides the mlp training CLI.
//
// Usage:
//
//	go run ./cmd/mlp -topology "2 6 2" -seed 7
//	go run ./cmd/mlp -config run.yaml
//	go run ./cmd/mlp -dataset mnist -data ./data -topology "784 64 10" -samples 20000
//	go run ./cmd/mlp version
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/born-ml/mlp/internal/dataset"
	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/train"
	"github.com/pkg/errors"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("mlp %s\n", version)
		return
	}

	cfg, opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("mlp: %v", err)
	}
	if err := run(cfg, opts, os.Stdout); err != nil {
		log.Fatalf("mlp: %v", err)
	}
}

// options are the flags that only affect output.
type options struct {
	quiet bool
}

// parseFlags loads the config file, if any, then applies the flags that
// were set explicitly on top of it.
func parseFlags(args []string) (train.Config, options, error) {
	fs := flag.NewFlagSet("mlp", flag.ContinueOnError)

	configPath := fs.String("config", "", "YAML run configuration")
	topology := fs.String("topology", "", "layer widths, input first (e.g. \"2 6 2\")")
	seed := fs.Uint64("seed", 0, "seed of the weight and data source")
	datasetKind := fs.String("dataset", "", "dataset: ring or mnist")
	dataDir := fs.String("data", "", "directory containing the MNIST files")
	samples := fs.Int("samples", 0, "samples to generate or load")
	testSamples := fs.Int("test", 0, "held-out samples")
	chunks := fs.Int("chunks", 0, "training chunks")
	chunkSize := fs.Int("chunk-size", 0, "samples per chunk")
	repeats := fs.Int("repeats", 0, "passes over each chunk")
	workers := fs.Int("workers", 0, "evaluation goroutines (0 = one per CPU)")
	lr := fs.Float64("lr", 0, "learning rate")
	momentum := fs.Float64("momentum", 0, "momentum factor in [0, 1)")
	quiet := fs.Bool("q", false, "omit per-chunk progress and network dumps")

	if err := fs.Parse(args); err != nil {
		return train.Config{}, options{}, err
	}

	cfg := train.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = train.LoadConfig(*configPath); err != nil {
			return cfg, options{}, err
		}
	}

	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "topology":
			t, err := train.ParseTopology(*topology)
			if err != nil {
				parseErr = err
				return
			}
			cfg.Topology = t
		case "seed":
			cfg.Seed = *seed
		case "dataset":
			cfg.Dataset = *datasetKind
		case "data":
			cfg.DataDir = *dataDir
		case "samples":
			cfg.Samples = *samples
		case "test":
			cfg.TestSamples = *testSamples
		case "chunks":
			cfg.Chunks = *chunks
		case "chunk-size":
			cfg.ChunkSize = *chunkSize
		case "repeats":
			cfg.Repeats = *repeats
		case "workers":
			cfg.Workers = *workers
		case "lr":
			cfg.Optimizer.LR = *lr
		case "momentum":
			cfg.Optimizer.Momentum = *momentum
		}
	})
	if parseErr != nil {
		return cfg, options{}, parseErr
	}

	if err := cfg.Validate(); err != nil {
		return cfg, options{}, err
	}
	return cfg, options{quiet: *quiet}, nil
}

func run(cfg train.Config, opts options, w io.Writer) error {
	fmt.Fprintf(w, "mlp %s - topology %v, %s dataset\n", version, cfg.Topology, cfg.Dataset)
	fmt.Fprintf(w, "  learning rate %.4f, momentum %.2f, %d chunks x %d samples x %d repeats\n\n",
		cfg.Optimizer.LR, cfg.Optimizer.Momentum, cfg.Chunks, cfg.ChunkSize, cfg.Repeats)

	// The network draws its weights before the dataset draws its points.
	rnd := nn.NewUniformSource(cfg.Seed)
	net, err := nn.New(cfg.Topology, rnd)
	if err != nil {
		return errors.Wrap(err, "create network")
	}

	samples, heldOut, err := loadData(cfg, rnd)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Train: %d samples, held out: %d samples\n\n", len(samples), len(heldOut))

	progress := w
	if opts.quiet {
		progress = io.Discard
	} else {
		fmt.Fprintln(w, "Initialized network:")
		train.PrintNetwork(w, net)
		fmt.Fprintln(w)
	}

	trainer, err := train.NewTrainer(net, cfg, progress)
	if err != nil {
		return err
	}
	history, err := trainer.Fit(samples, heldOut)
	if err != nil {
		return errors.Wrap(err, "train")
	}

	fmt.Fprintln(w)
	testErr, err := train.PrintPredictions(progress, trainer.Network(), heldOut)
	if err != nil {
		return errors.Wrap(err, "evaluate")
	}
	fmt.Fprintln(w)
	train.PrintSummary(w, history, testErr)

	if !opts.quiet {
		fmt.Fprintln(w, "\nNetwork after training:")
		train.PrintNetwork(w, net)
	}

	return nil
}

// loadData returns the training samples and the held-out samples.
func loadData(cfg train.Config, rnd nn.RandomSource) (samples, heldOut []dataset.Sample, err error) {
	switch cfg.Dataset {
	case train.DatasetMNIST:
		trainSet, testSet, err := dataset.LoadMNIST(cfg.DataDir, cfg.Samples)
		if err != nil {
			return nil, nil, err
		}
		return trainSet, testSet[:min(cfg.TestSamples, len(testSet))], nil
	default:
		all := dataset.Ring(cfg.Samples, rnd, cfg.RingInner, cfg.RingOuter)
		return all, dataset.Tail(all, cfg.TestSamples), nil
	}
}
