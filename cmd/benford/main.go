// Package main provides the entry point for the benford CLI.
//
// benford checks numeric datasets against Benford's Law and generates
// synthetic Benford-distributed samples.
//
// Usage:
//
//	benford analyze invoices.txt
//	benford generate 50000 | benford analyze -
//	benford history list
//
// See --help for all available options.
package main

import (
	"os"

	"github.com/maxgfr/benford-law/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
