// Package main provides the ODL-Go CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/odl-go/odl/datasets"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("ODL-Go %s\n", version)
			return
		case "fetch":
			if err := fetch(os.Args[2:]); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("ODL-Go - Operator Discretization Library for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version           Show version")
	fmt.Println("  fetch <dataset>   Download a reference image into the cache")
	fmt.Println("")
	fmt.Println("Datasets: brain_phantom, resolution_phantom, building, rings, blurring_kernel")
}

// fetch prefetches a named dataset into the local cache.
func fetch(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: odl fetch <dataset>")
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer log.Sync()

	cache, err := datasets.NewCache("", datasets.WithLogger(log))
	if err != nil {
		return err
	}

	ctx := context.Background()
	var img *datasets.Image
	switch args[0] {
	case "brain_phantom":
		img, err = datasets.BrainPhantom(ctx, cache, nil)
	case "resolution_phantom":
		img, err = datasets.ResolutionPhantom(ctx, cache, nil)
	case "building":
		img, err = datasets.Building(ctx, cache, nil, false)
	case "rings":
		img, err = datasets.Rings(ctx, cache, nil, false)
	case "blurring_kernel":
		img, err = datasets.BlurringKernel(ctx, cache, nil)
	default:
		return fmt.Errorf("unknown dataset %q", args[0])
	}
	if err != nil {
		return err
	}

	fmt.Printf("fetched %s: shape %v, range [%g, %g]\n", args[0], img.Shape, img.Min(), img.Max())
	return nil
}
