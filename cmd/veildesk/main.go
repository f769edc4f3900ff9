// Package main starts the Veildesk agent.
package main

import "flag"

// main is the entrypoint for the Veildesk agent.
func main() {
	debug := flag.Bool("debug", false, "Enable verbose debug logging")
	flag.Parse()

	if err := run(*debug); err != nil {
		logFatal(err)
	}
}
