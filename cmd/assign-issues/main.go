// Package main is the entry point for the retired assign-issues tool.
// It always exits with status 1.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/issue-triage/internal/cli"
	"github.com/runoshun/issue-triage/internal/domain"
)

func main() {
	if err := cli.NewAssignCommand().Execute(); err != nil && !errors.Is(err, domain.ErrAssignmentDisabled) {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}
