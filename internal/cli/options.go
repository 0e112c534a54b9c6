package cli

import (
	"flag"
	"fmt"
	"strconv"
)

// ArchiveEnv names the environment variable holding the default archive path.
const ArchiveEnv = "RICOCHET_ARCHIVE"

// Options controls a single generator run
type Options struct {
	Output  string
	Seed    uint64
	SeedSet bool
	Archive string
	Quiet   bool

	// NoProgress hides the progress bar even when not quiet.
	NoProgress bool
}

// seedFlag records whether -seed was given at all, since 0 is a valid seed.
type seedFlag struct {
	opts *Options
}

func (s seedFlag) String() string {
	if s.opts == nil || !s.opts.SeedSet {
		return ""
	}
	return strconv.FormatUint(s.opts.Seed, 10)
}

func (s seedFlag) Set(v string) error {
	seed, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid seed %q: %w", v, err)
	}
	s.opts.Seed = seed
	s.opts.SeedSet = true
	return nil
}

// RegisterFlags binds the run flags shared by every generator command.
// An empty defaultOutput omits the -output flag.
func RegisterFlags(fs *flag.FlagSet, opts *Options, defaultOutput string) {
	if defaultOutput != "" {
		fs.StringVar(&opts.Output, "output", defaultOutput, "Output JSON file path")
	}
	fs.Var(seedFlag{opts: opts}, "seed", "Fixed random seed (default: random, logged)")
	fs.StringVar(&opts.Archive, "archive", GetEnvDefault(ArchiveEnv, ""), "bbolt file to record the run in (env "+ArchiveEnv+")")
	fs.BoolVar(&opts.Quiet, "quiet", false, "Suppress logs and progress output")
}
