package reshaper

import (
	"errors"
	"fmt"

	"github.com/jedwards4b/PyReshaper/args"
	reshaperCommands "github.com/jedwards4b/PyReshaper/command"
	"github.com/jedwards4b/PyReshaper/progress"
	"github.com/op/go-logging"
)

var (
	validCommands = map[string]bool{
		"makespec": true,
		"check":    true,
		"show":     true,
	}

	format = logging.MustStringFormatter(
		`%{color}%{level:.1s} %{shortfunc}() >%{color:reset} %{message}`)
)

func printUsage() {
	fmt.Println("Usage: reshaper [flags] makespec|check|show [args...]")
}

func ReshaperRun(args args.Args, cmdArgs []string) error {
	log := logging.MustGetLogger("reshaper")

	// Disable logging if necessary.
	logging.SetFormatter(format)
	if args.ShowLog {
		logging.SetLevel(logging.DEBUG, "reshaper")
		progress.Disable()
	} else {
		logging.SetLevel(logging.CRITICAL, "reshaper")
	}

	if args.UseSimpleProgress {
		progress.UseSimple()
	}

	// Make sure at least the command was passed.
	if len(cmdArgs) < 1 {
		printUsage()
		return errors.New("No command passed on command-line")
	}

	// Get the command.
	command := cmdArgs[0]
	if !validCommands[command] {
		printUsage()
		return errors.New(fmt.Sprintf("Unknown command '%s'", command))
	}

	switch command {
	case "makespec":
		log.Infof("Making specifier file '%s'", args.SpecFile)
		return reshaperCommands.MakeSpec(&args, cmdArgs[1:])

	case "check":
		progress.Start()
		defer progress.Finish()
		return reshaperCommands.Check(&args, cmdArgs[1:])

	case "show":
		specFile := args.SpecFile
		if len(cmdArgs) > 1 {
			specFile = cmdArgs[1]
		}

		return reshaperCommands.Show(&args, specFile)
	}

	return nil
}
