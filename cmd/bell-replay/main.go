package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/bell-fighter/config"
	"github.com/lixenwraith/bell-fighter/logging"
	"github.com/lixenwraith/bell-fighter/replay"
)

var (
	seedFlag  = flag.Uint64("seed", 0, "Override the script seed")
	debugFlag = flag.Bool("debug", false, "Log phase transitions and commands to the log directory")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] script.yaml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	script, err := replay.Load(path)
	if err != nil {
		return err
	}
	if *seedFlag != 0 {
		script.Seed = *seedFlag
	}

	logCfg := config.Defaults().Logging
	if *debugFlag {
		logCfg.Enabled = true
		logCfg.Level = "debug"
	}
	log, closeLog, err := logging.New(logCfg)
	if err != nil {
		return err
	}
	defer closeLog()

	fmt.Println(replay.Run(script, log))
	return nil
}
