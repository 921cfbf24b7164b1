package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/scoobybejesus/cryptools/cmd"
)

func main() {
	// A .env next to the binary can hold the usual settings
	// (HOME_CURRENCY, LK_CUTOFF_DATE, INV_COSTING_METHOD, OUTPUT_DIR).
	_ = godotenv.Load()

	// Shell completion for the subcommands; exits when invoked by the shell.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"lots":         {Flags: map[string]complete.Predictor{"f": predict.Files("*.csv")}},
			"gains":        {Flags: map[string]complete.Predictor{"f": predict.Files("*.csv")}},
			"transactions": {Flags: map[string]complete.Predictor{"f": predict.Files("*.csv")}},
			"export":       {Flags: map[string]complete.Predictor{"f": predict.Files("*.csv"), "o": predict.Dirs("*")}},
		},
	}
	completion.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
