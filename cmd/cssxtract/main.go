// Command cssxtract runs the extraction transform over a single source
// file from the command line: read the file, optionally read a theme
// JSON file, run api.Transform, and print the result as JSON to
// stdout. Flag parsing style follows the example pack's CLI convention
// (DeusData-codebase-memory-mcp/cmd/codebase-memory-mcp/main.go) rather
// than a flags package, since the surface here is three small options.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/cssxtract/compiler/pkg/api"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var filename, themePath, dir string
	var positional []string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--theme":
			i++
			if i >= len(args) {
				fmt.Fprintln(os.Stderr, "error: --theme requires a path argument")
				return 1
			}
			themePath = args[i]
		case "--dir":
			i++
			if i >= len(args) {
				fmt.Fprintln(os.Stderr, "error: --dir requires ltr or rtl")
				return 1
			}
			dir = args[i]
		case "--help", "-h":
			printUsage()
			return 0
		default:
			positional = append(positional, args[i])
		}
	}

	if len(positional) != 1 {
		printUsage()
		return 1
	}
	filename = positional[0]

	source, err := os.ReadFile(filename)
	if err != nil {
		log.Printf("error reading %s: %v", filename, err)
		return 1
	}

	var themeJSON *string
	if themePath != "" {
		themeBytes, err := os.ReadFile(themePath)
		if err != nil {
			log.Printf("error reading theme %s: %v", themePath, err)
			return 1
		}
		t := string(themeBytes)
		themeJSON = &t
	}

	result, err := api.Transform(filename, string(source), themeJSON, dir)
	if err != nil {
		log.Printf("%v", err)
		return 1
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Printf("error encoding result: %v", err)
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: cssxtract [--theme <path>] [--dir ltr|rtl] <file>")
}
