package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkarpis/stardrift/internal/loop"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Run:   runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: terminal required: %v\n", err)
		os.Exit(1)
	}
	defer term.Restore(fd, oldState)

	runErr := loop.Run(bufio.NewReader(os.Stdin), os.Stdout, loop.Options{Seed: flagSeed})

	term.Restore(fd, oldState)
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
