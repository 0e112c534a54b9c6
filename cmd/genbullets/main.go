package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"pkg.jsn.cam/ricochet/internal/cli"
)

/*writes 10 random bullet spawns to bullets.json*/

func main() {
	if err := cli.RunGenerator("bullets", os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("[GEN] %v", err)
	}
}
