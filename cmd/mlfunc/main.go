// Package main provides the mlfunc CLI, which evaluates one operation over
// values given on the command line.
//
// Usage:
//
//	mlfunc version
//	mlfunc [-shape 2,2] [-axis 1] [-f32] [-v] <op> v1 v2 ...
//
// Example:
//
//	mlfunc -shape 2,2 -axis 1 softmax -0.5 0.4 0.7 -0.056
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/mlfunc/ops"
	"github.com/born-ml/mlfunc/tensor"
)

const version = "v0.1.0"

var opNames = []string{"exp", "sigmoid", "max", "argmax", "sort", "argsort", "softmax"}

type config struct {
	shape    tensor.Shape
	axis     int
	keepDims bool
	single   bool
	verbose  bool
	op       string
	values   []string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "mlfunc:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 && args[0] == "version" {
		fmt.Fprintf(stdout, "mlfunc %s\n", version)
		return nil
	}

	cfg, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if cfg.single {
		return evaluate[float32](cfg, logger, stdout)
	}
	return evaluate[float64](cfg, logger, stdout)
}

func parseArgs(args []string, stderr io.Writer) (config, error) {
	var cfg config
	var shape string

	fs := flag.NewFlagSet("mlfunc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&shape, "shape", "", "comma-separated dimensions (default: 1-D over all values)")
	fs.IntVar(&cfg.axis, "axis", -1, "axis for reductions; negative counts from the end")
	fs.BoolVar(&cfg.keepDims, "keepdims", false, "keep the reduced axis at size 1 (max, argmax)")
	fs.BoolVar(&cfg.single, "f32", false, "compute in float32 instead of float64")
	fs.BoolVar(&cfg.verbose, "v", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: mlfunc [flags] <%s> values...\n", strings.Join(opNames, "|"))
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return cfg, errors.New("missing operation")
	}
	cfg.op = fs.Arg(0)
	cfg.values = fs.Args()[1:]

	if shape == "" {
		cfg.shape = tensor.Shape{len(cfg.values)}
		return cfg, nil
	}
	for _, part := range strings.Split(shape, ",") {
		dim, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return cfg, fmt.Errorf("invalid -shape %q: %w", shape, err)
		}
		cfg.shape = append(cfg.shape, dim)
	}
	return cfg, nil
}

func evaluate[T tensor.Float](cfg config, logger *slog.Logger, stdout io.Writer) error {
	values := make([]T, len(cfg.values))
	for i, s := range cfg.values {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
		values[i] = T(v)
	}

	x, err := tensor.FromSlice(values, cfg.shape)
	if err != nil {
		return err
	}
	logger.Debug("input", "op", cfg.op, "shape", x.Shape(), "dtype", x.DType(), "axis", cfg.axis)

	res, err := dispatch(x, cfg, ops.WithLogger(logger))
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "shape: %v\n%s\n", res.Shape(), res.Format())
	return nil
}

// result is satisfied by both value and index tensors.
type result interface {
	Shape() tensor.Shape
	Format() string
}

func dispatch[T tensor.Float](x *tensor.Tensor[T], cfg config, opts ...ops.Option) (result, error) {
	switch cfg.op {
	case "exp":
		return ops.Exp(x), nil
	case "sigmoid":
		return ops.Sigmoid(x), nil
	case "max":
		if cfg.keepDims {
			return ops.MaxKeepDims(x, cfg.axis, opts...)
		}
		return ops.Max(x, cfg.axis, opts...)
	case "argmax":
		if cfg.keepDims {
			return ops.ArgmaxKeepDims(x, cfg.axis, opts...)
		}
		return ops.Argmax(x, cfg.axis, opts...)
	case "sort":
		return ops.Sort(x, cfg.axis, opts...)
	case "argsort":
		return ops.Argsort(x, cfg.axis, opts...)
	case "softmax":
		return ops.Softmax(x, cfg.axis, opts...)
	default:
		return nil, fmt.Errorf("unknown operation %q (want one of %s)", cfg.op, strings.Join(opNames, ", "))
	}
}
