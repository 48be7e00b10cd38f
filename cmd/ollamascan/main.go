// Package main provides the entry point for the ollamascan CLI.
//
// ollamascan searches the Ollama model catalog from the command line.
// It lists model names, tags, parameter counts, and download sizes, and
// delegates pull and installed operations to a local Ollama daemon.
//
// Usage:
//
//	ollamascan search <query>
//	ollamascan tags <model>
//	ollamascan pull <model[:tag]>
//
// See --help for all available options.
package main

// main is the entry point for ollamascan.
func main() {
	Execute()
}
