package cli

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"pkg.jsn.cam/ricochet/pkg/archive"
	"pkg.jsn.cam/ricochet/pkg/generator"
	"pkg.jsn.cam/ricochet/pkg/ricochet"
)

// progressMin is the smallest batch worth drawing a progress bar for.
const progressMin = 1000

// Progress is where progress bars are drawn.
var Progress io.Writer = os.Stderr

// Generate runs generator name once with opts. When arc is non-nil the run
// is recorded in it.
func Generate(name string, opts Options, arc *archive.Archive) (generator.Result, error) {
	g, err := generator.Get(name)
	if err != nil {
		return generator.Result{}, err
	}

	seed := opts.Seed
	if !opts.SeedSet {
		seed = ricochet.NewSeed()
	}
	output := opts.Output
	if output == "" {
		output = g.DefaultOutput()
	}
	count := g.DefaultCount()

	log.Printf("[GEN] %s: %d records, seed %d -> %s", name, count, seed, output)

	bar := progressbar.NewOptions(count,
		progressbar.OptionSetWriter(Progress),
		progressbar.OptionSetDescription("[GEN] "+name),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetVisibility(!opts.Quiet && !opts.NoProgress && count >= progressMin),
	)
	tick := func() { _ = bar.Add(1) }

	start := time.Now()
	result, err := generator.Produce(g, ricochet.NewRand(seed), count, output, tick)
	_ = bar.Finish()
	if err != nil {
		return generator.Result{}, err
	}

	log.Printf("[GEN] %s: wrote %s to %s in %v", name, humanize.Bytes(uint64(result.Bytes)), result.Output, time.Since(start).Round(time.Millisecond))

	if arc != nil {
		if _, err := arc.Record(name, seed, result); err != nil {
			return result, err
		}
	}

	return result, nil
}

// OpenArchive opens the archive at path, or returns nil when path is empty.
func OpenArchive(path string) (*archive.Archive, error) {
	if path == "" {
		return nil, nil
	}
	return archive.Open(path)
}

// Quiet routes the standard logger to io.Discard when quiet is set.
func Quiet(quiet bool) {
	if quiet {
		log.SetOutput(io.Discard)
	}
}
