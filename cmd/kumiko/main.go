package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/louxiu/kumiko"
	"github.com/louxiu/kumiko/vision"
)

func main() {
	cmd := &cli.Command{
		Name:  "kumiko",
		Usage: "Extract comic-book panel rectangles from page images",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Input page image path",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Batch manifest (YAML) listing multiple input images",
			},
			&cli.StringFlag{
				Name:  "numbering",
				Usage: "Reading direction: ltr or rtl",
				Value: string(kumiko.LTR),
			},
			&cli.FloatFlag{
				Name:  "min-panel-ratio",
				Usage: "Minimum panel size, as a fraction of the shorter page side",
				Value: kumiko.DefaultMinPanelSizeRatio,
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Record per-pass panel-count diagnostics",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Worker pool size for batch runs (default: GOMAXPROCS)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output JSON file path (default: stdout)",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	manifestPath := cmd.String("config")
	inputPath := cmd.String("input")

	workers := cmd.Int("workers")
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var jobs []batchJob

	switch {
	case manifestPath != "":
		manifest, err := loadBatchManifest(manifestPath)
		if err != nil {
			return err
		}
		for _, img := range manifest.Images {
			jobs = append(jobs, batchJob{path: img.Path, url: img.URL, cfg: manifest.configFor(img)})
		}
	case inputPath != "":
		cfg := kumiko.DefaultConfig()
		cfg.Numbering = kumiko.Numbering(cmd.String("numbering"))
		cfg.MinPanelSizeRatio = cmd.Float("min-panel-ratio")
		cfg.Debug = cmd.Bool("debug")
		jobs = append(jobs, batchJob{path: inputPath, cfg: cfg})
	default:
		return errors.New("kumiko: either --input or --config must be given")
	}

	results, err := runBatch(ctx, jobs, workers)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return errors.Wrap(err, "kumiko: encoding results")
	}

	if outputPath := cmd.String("output"); outputPath != "" {
		if err := os.WriteFile(outputPath, out, 0644); err != nil {
			return errors.Wrapf(err, "kumiko: writing %q", outputPath)
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", outputPath)
		return nil
	}

	fmt.Println(string(out))
	return nil
}

// batchJob is one resolved unit of work: an image path with its effective
// page configuration.
type batchJob struct {
	path string
	url  string
	cfg  kumiko.Config
}

// runBatch extracts panels for every job, pooling vision.Backend instances
// across up to workers concurrent pages (SPEC_FULL.md §5.1).
func runBatch(ctx context.Context, jobs []batchJob, workers int) ([]kumiko.Result, error) {
	backendPool := newBackendPool(ctx, workers)
	defer backendPool.Close(ctx)

	results := make([]kumiko.Result, len(jobs))
	errs := make([]error, len(jobs))

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, job := range jobs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, job batchJob) {
			defer wg.Done()
			defer func() { <-sem }()

			errs[i] = borrowBackend(ctx, backendPool, func(backend vision.Backend) error {
				page, err := kumiko.NewPage(job.path, job.cfg, backend)
				if err != nil {
					return err
				}
				page.SourceURL = job.url
				results[i] = page.ToResult()
				return nil
			})
		}(i, job)
	}

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, errors.Wrapf(err, "kumiko: processing %q", jobs[i].path)
		}
	}

	return results, nil
}
