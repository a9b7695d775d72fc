// Command kitti loads one of the KITTI archives and reports partition sizes.
// It exists for manual inspection of a downloaded archive, not for training.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/RusCucumber/cgo-groupwork/kitti"
	"github.com/RusCucumber/cgo-groupwork/viz"
)

func main() {
	var (
		dir       = flag.String("dir", "", "root directory of the KITTI archive")
		dataset   = flag.String("dataset", "semantics", "dataset to load: semantics, depth or depth-test")
		valRatio  = flag.Float64("val-ratio", 0.2, "fraction of training samples held out for validation")
		seed      = flag.Int64("seed", -1, "shuffle seed; negative draws a fresh permutation per run")
		noShuffle = flag.Bool("no-shuffle", false, "disable shuffling before the train/validation split")
		show      = flag.String("show", "", "render the first training input to this PNG file")
	)
	flag.Parse()

	if *dir == "" {
		log.Fatal("missing required -dir flag")
	}

	opts := kitti.DefaultOptions()
	opts.ValRatio = *valRatio
	opts.Shuffle = !*noShuffle
	if *seed >= 0 {
		opts.Seed = seed
	}

	switch *dataset {
	case "semantics":
		train, val, test, err := kitti.LoadSemanticsDataset(*dir, opts)
		if err != nil {
			log.Fatalf("failed to load semantics dataset: %v", err)
		}
		fmt.Printf("train: %d samples\n", train.Len())
		fmt.Printf("validation: %d samples\n", val.Len())
		fmt.Printf("test: %d samples\n", test.Len())
		if *show != "" && train.Len() > 0 {
			x, _ := train.At(0)
			renderSample(x, *show)
		}
	case "depth":
		train, val, err := kitti.LoadDepthDataset(*dir, opts)
		if err != nil {
			log.Fatalf("failed to load depth dataset: %v", err)
		}
		fmt.Printf("train: %d samples\n", train.Len())
		fmt.Printf("validation: %d samples\n", val.Len())
		if *show != "" && train.Len() > 0 {
			x, _, _, _ := train.At(0)
			renderSample(x, *show)
		}
	case "depth-test":
		test, err := kitti.LoadDepthTestDataset(*dir)
		if err != nil {
			log.Fatalf("failed to load depth test dataset: %v", err)
		}
		fmt.Printf("test: %d samples\n", test.Len())
		if *show != "" && test.Len() > 0 {
			x, _, _, _ := test.At(0)
			renderSample(x, *show)
		}
	default:
		log.Fatalf("unknown dataset %q: want semantics, depth or depth-test", *dataset)
	}
}

func renderSample(x interface{}, path string) {
	if _, err := viz.Show(x, path); err != nil {
		log.Fatalf("failed to render sample: %v", err)
	}
	log.Printf("wrote %s", path)
}
