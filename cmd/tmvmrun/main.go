// Command tmvmrun loads a program file and runs it on the CPU core
// against the flat-memory host (spec.md §1, §6.3).
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tmbytecode/tmvm/cpu"
	"github.com/tmbytecode/tmvm/host"
)

const version = "0.1.0"

// keyboardIRQ is the IF bit TerminalDevice raises on keystroke arrival.
const keyboardIRQ = 0

func main() {
	var maxSteps int
	var showVersion, noTerminal bool

	flag.IntVar(&maxSteps, "max-steps", 0, "stop after this many instructions (0 = unbounded)")
	flag.BoolVar(&noTerminal, "no-terminal", false, "don't attach the terminal device (useful for piped/headless runs)")
	flag.BoolVar(&showVersion, "v", false, "print version and exit")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tmvmrun program.tmby\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Println("tmvmrun", version)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	path := flag.Arg(0)
	baseDir, name := filepath.Split(path)
	if baseDir == "" {
		baseDir = "."
	}

	hdr, rom, err := host.LoadProgramFile(baseDir, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if hdr.Name != "" {
		fmt.Fprintf(os.Stderr, "loaded %q by %s (%d bytes)\n", hdr.Name, hdr.Author, len(rom))
	}

	machine := host.NewMachine(rom)
	c := cpu.New(machine)

	var term *host.TerminalDevice
	if !noTerminal {
		term = host.NewTerminalDevice(c, keyboardIRQ)
		term.Register(machine)
		if err := term.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer term.Stop()
	}

	c.Run(maxSteps)

	if c.EC != cpu.ErrNone {
		fmt.Fprintf(os.Stderr, "stopped with error: %s\n", c.EC)
		os.Exit(1)
	}
}
