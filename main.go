/*
Package main implements eldlog, a command line tool that turns a truck trip
plan into daily duty-status log sheets.

A trip is either planned on the trip-planning backend from the current,
pickup and dropoff locations and the hours already used in the driver's
cycle, or read from a previously saved result. The log sheets are rendered
as SVG with one row per duty status over a 24-hour grid, and the trip
summary is printed to the terminal.
*/
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var version = "dev"

// Global debug flag
var debugMode bool

// debugPrint prints debug messages when debug mode is enabled
func debugPrint(format string, args ...interface{}) {
	if debugMode {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// getOutputFilename returns outputFile when set, otherwise the input
// filename with its extension replaced by .svg ("trip.json" becomes "trip.svg").
func getOutputFilename(inputFile, outputFile string) string {
	if outputFile != "" {
		return outputFile
	}

	base := filepath.Base(inputFile)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + ".svg"
}

func main() {
	if err := SetupCommands().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
