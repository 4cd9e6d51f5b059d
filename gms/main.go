package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/titans/grocery/cmd"
)

func main() {
	// Shell completion for subcommand names and the app-wide flags.
	// Complete exits by itself when invoked by the shell.
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	completion := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"file":     predict.Files("*.csv"),
			"store":    predict.Something,
			"currency": predict.Something,
		},
	}
	completion.Complete("gms")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")

	// With no arguments, drop into the interactive menu.
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "menu")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
