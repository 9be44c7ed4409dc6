package main

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mlemay/acidnes/internal/errlist"
	"github.com/mlemay/acidnes/internal/host"
	"github.com/mlemay/acidnes/nes"
)

func main() {
	app := &cli.App{
		Name:      "acidnes",
		Usage:     "step a 6502/NES-style cartridge through the core",
		ArgsUsage: "[rom]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "headless", Usage: "run without the terminal display"},
			&cli.BoolFlag{Name: "trace", Usage: "stream a nestest-style instruction trace to stdout"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		var invalid *nes.InvalidOpcodeError
		if errors.As(err, &invalid) {
			log.Printf("nes: halted: %s", err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cart, err := loadCartridge(c.Args().First())
	if err != nil {
		return err
	}

	if c.Bool("headless") {
		console := nes.NewConsole(cart, host.Headless{})
		if c.Bool("trace") {
			console.SetTrace(os.Stdout)
		}
		return console.Run()
	}

	term := host.NewTerminal()
	console := nes.NewConsole(cart, term)
	if c.Bool("trace") {
		console.SetTrace(os.Stdout)
	}

	runErr := make(chan error, 1)
	go func() {
		runErr <- console.Run()
		term.Stop()
	}()

	errs := errlist.New(term.Run(), <-runErr)
	return errs.Err()
}

func loadCartridge(path string) (*nes.Cartridge, error) {
	if path == "" {
		return nes.LoadCartridge(bytes.NewReader(defaultROM()))
	}
	return nes.LoadCartridgeFile(path)
}
