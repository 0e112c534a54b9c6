package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"pkg.jsn.cam/ricochet/internal/cli"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: ricochet <command> [flags]

Commands:
  bullets     Generate bullets.json
  walls       Generate walls.json
  all         Generate every fixture concurrently
  generators  List available generators
  runs        List archived runs
  replay      Rewrite an archived run's output
  forget      Delete an archived run

Run 'ricochet <command> -h' for command flags.
`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "bullets", "walls":
		err = cli.RunGenerator(cmd, args)
	case "all":
		err = cli.RunAll(args)
	case "generators":
		cli.RunGenerators()
	case "runs":
		err = cli.RunList(args)
	case "replay":
		err = cli.RunReplay(args)
	case "forget":
		err = cli.RunForget(args)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		usage()
		os.Exit(2)
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("[RICOCHET] %v", err)
	}
}
