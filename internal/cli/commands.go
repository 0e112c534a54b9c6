package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"pkg.jsn.cam/ricochet/pkg/archive"
	"pkg.jsn.cam/ricochet/pkg/generator"
	"pkg.jsn.cam/ricochet/pkg/ricochet"
)

// Stdout receives command output (tables, replay summaries).
var Stdout io.Writer = os.Stdout

// RunGenerator parses args and runs generator name once.
func RunGenerator(name string, args []string) error {
	g, err := generator.Get(name)
	if err != nil {
		return err
	}

	var opts Options
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	RegisterFlags(fs, &opts, g.DefaultOutput())
	if err := fs.Parse(args); err != nil {
		return err
	}
	Quiet(opts.Quiet)

	arc, err := OpenArchive(opts.Archive)
	if err != nil {
		return err
	}
	if arc != nil {
		defer arc.Close()
	}

	_, err = Generate(name, opts, arc)
	return err
}

// RunAll generates every registered fixture concurrently into one directory.
// Generator i uses seed+i so a fixed seed reproduces every file.
func RunAll(args []string) error {
	var opts Options
	var dir string
	fs := flag.NewFlagSet("all", flag.ContinueOnError)
	RegisterFlags(fs, &opts, "")
	fs.StringVar(&dir, "dir", ".", "Directory to write fixtures into")
	if err := fs.Parse(args); err != nil {
		return err
	}
	Quiet(opts.Quiet)

	if !opts.SeedSet {
		opts.Seed = ricochet.NewSeed()
		opts.SeedSet = true
	}

	arc, err := OpenArchive(opts.Archive)
	if err != nil {
		return err
	}
	if arc != nil {
		defer arc.Close()
	}

	var g errgroup.Group
	for i, name := range generator.List() {
		gen, err := generator.Get(name)
		if err != nil {
			return err
		}

		runOpts := opts
		runOpts.Seed = opts.Seed + uint64(i)
		runOpts.Output = filepath.Join(dir, gen.DefaultOutput())
		runOpts.NoProgress = true

		g.Go(func() error {
			_, err := Generate(name, runOpts, arc)
			return err
		})
	}

	return g.Wait()
}

// RunGenerators prints the registered generators.
func RunGenerators() {
	for _, name := range generator.List() {
		g, _ := generator.Get(name)
		fmt.Fprintf(Stdout, "%-10s %-12s %6d  %s\n", name, g.DefaultOutput(), g.DefaultCount(), g.Description())
	}
}

func openRequiredArchive(path string) (*archive.Archive, error) {
	if path == "" {
		return nil, ricochet.ErrArchiveNotEnabled
	}
	return archive.Open(path)
}

// RunList prints archived runs, newest first.
func RunList(args []string) error {
	var path string
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	fs.StringVar(&path, "archive", GetEnvDefault(ArchiveEnv, ""), "bbolt archive file (env "+ArchiveEnv+")")
	if err := fs.Parse(args); err != nil {
		return err
	}

	arc, err := openRequiredArchive(path)
	if err != nil {
		return err
	}
	defer arc.Close()

	runs, err := arc.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(Stdout, "No runs found")
		return nil
	}

	fmt.Fprintf(Stdout, "%-36s %-8s %-20s %-8s %-10s %s\n", "RUN ID", "KIND", "SEED", "COUNT", "SIZE", "CREATED")
	fmt.Fprintln(Stdout, "──────────────────────────────────────────────────────────────────────────────────────────────────────────")
	for _, run := range runs {
		fmt.Fprintf(Stdout, "%-36s %-8s %-20d %-8d %-10s %s\n",
			run.ID,
			run.Generator,
			run.Seed,
			run.Count,
			humanize.Bytes(uint64(run.Bytes)),
			run.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	return nil
}

// RunReplay rewrites an archived run's output.
func RunReplay(args []string) error {
	var path, id, output string
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	fs.StringVar(&path, "archive", GetEnvDefault(ArchiveEnv, ""), "bbolt archive file (env "+ArchiveEnv+")")
	fs.StringVar(&id, "id", "", "Run ID to replay")
	fs.StringVar(&output, "output", "", "Output path (default: the run's original output)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if id == "" {
		return errors.New("-id is required")
	}

	arc, err := openRequiredArchive(path)
	if err != nil {
		return err
	}
	defer arc.Close()

	run, n, err := arc.Replay(id, output)
	if err != nil {
		return err
	}
	if output == "" {
		output = run.Output
	}

	fmt.Fprintf(Stdout, "Replayed %s run %s (seed %d): wrote %s to %s\n",
		run.Generator, run.ID, run.Seed, humanize.Bytes(uint64(n)), output)
	return nil
}

// RunForget deletes an archived run.
func RunForget(args []string) error {
	var path, id string
	fs := flag.NewFlagSet("forget", flag.ContinueOnError)
	fs.StringVar(&path, "archive", GetEnvDefault(ArchiveEnv, ""), "bbolt archive file (env "+ArchiveEnv+")")
	fs.StringVar(&id, "id", "", "Run ID to delete")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if id == "" {
		return errors.New("-id is required")
	}

	arc, err := openRequiredArchive(path)
	if err != nil {
		return err
	}
	defer arc.Close()

	if err := arc.Forget(id); err != nil {
		return err
	}

	fmt.Fprintf(Stdout, "Forgot run %s\n", id)
	return nil
}
