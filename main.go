package main

import (
	"flag"
	"os"

	"github.com/jedwards4b/PyReshaper/args"
	"github.com/jedwards4b/PyReshaper/reshaper"
	"github.com/op/go-logging"
)

func main() {
	log := logging.MustGetLogger("reshaper")

	// Load arguments.
	flag.Parse()

	// Get the current dir.
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("Error: %s", err)
	}

	// Load flags.
	programArgs, err := args.Load(cwd)
	if err != nil {
		log.Fatalf("Error: %s", err)
	}

	if err := reshaper.ReshaperRun(programArgs, flag.Args()); err != nil {
		log.Fatalf("Error: %s", err)
	}
}
