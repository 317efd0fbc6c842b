package app

import (
	"flag"
	"fmt"
	"io"
	"log"

	"lifegrid/internal/world"
)

// Setup parses the command line and builds the world and session it
// describes, loading the start-up snapshot when one is named. Flag errors are
// returned wrapped in ErrUsage rather than printed; callers report them with
// PrintUsage.
func Setup(prog string, args []string, logger *log.Logger) (*Config, *Session, error) {
	cfg := NewConfig()
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if err := cfg.Parse(fs.Args()); err != nil {
		return nil, nil, err
	}

	w, err := world.New(cfg.World, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if cfg.SnapshotFile != "" {
		if err := w.LoadFile(cfg.SnapshotFile); err != nil {
			return nil, nil, err
		}
	}
	return cfg, NewSession(w, cfg, logger), nil
}

// PrintUsage writes the usage line followed by the flag defaults.
func PrintUsage(w io.Writer, prog string) {
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(w)
	NewConfig().Bind(fs)
	fmt.Fprintln(w, Usage(prog))
	fs.PrintDefaults()
}
