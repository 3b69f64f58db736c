//go:build mage

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

const binary = "bin/ninjafmt"

func ldflags() string {
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	if commit == "" {
		commit = "unknown"
	}
	version, _ := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if version == "" {
		version = "dev"
	}
	return fmt.Sprintf(
		"-X github.com/dkoosis/ninjafmt/internal/version.Version=%s "+
			"-X github.com/dkoosis/ninjafmt/internal/version.CommitHash=%s "+
			"-X github.com/dkoosis/ninjafmt/internal/version.BuildDate=%s",
		version, commit, time.Now().UTC().Format(time.RFC3339))
}

// Build builds the ninjafmt binary
func Build() error {
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binary, "./cmd/ninjafmt")
}

// Install installs ninjafmt into GOBIN
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/ninjafmt")
}

// Test runs the test suite
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// QA runs vet and the test suite
func QA() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("vet failed: %w", err)
	}
	mg.Deps(Test)
	return nil
}

// Clean removes build artifacts
func Clean() error {
	return os.RemoveAll("bin")
}
