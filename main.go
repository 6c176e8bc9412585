package main

import (
	"fmt"
	"os"

	"ratectl/cmd"
	"ratectl/internal/audio"
	"ratectl/internal/log"
)

// main is the entry point. The program is a one-shot CLI: initialize the
// audio subsystem, dispatch the single requested operation, and exit with
// the code the dispatcher decided on.
func main() {
	os.Exit(run())
}

func run() int {
	// PortAudio backs device enumeration on every platform and the whole
	// hardware layer on non-macOS ones.
	if err := audio.Initialize(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() {
		if err := audio.Terminate(); err != nil {
			log.Warnf("audio shutdown: %v", err)
		}
	}()

	return cmd.Run(os.Args[1:], newDeviceService, os.Stdout, os.Stderr)
}
