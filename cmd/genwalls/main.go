package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"pkg.jsn.cam/ricochet/internal/cli"
)

/*writes 10,000 random wall segments to walls.json*/

func main() {
	if err := cli.RunGenerator("walls", os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("[GEN] %v", err)
	}
}
