//go:build mage

package main

import (
	"fmt"
	"time"

	"github.com/magefile/mage/mg"
)

const versionPkg = "github.com/philipparndt/goview/version"

type Build mg.Namespace

// Builds bin/goview with version information from git.
func (Build) Binary() error {
	ldflags := fmt.Sprintf("-X %s.Version=%s -X %s.GitCommit=%s -X %s.BuildDate=%s",
		versionPkg, gitOutput("dev", "describe", "--tags", "--always"),
		versionPkg, gitOutput("unknown", "rev-parse", "--short", "HEAD"),
		versionPkg, time.Now().UTC().Format(time.RFC3339),
	)
	_, err := executeCmd("go", withArgs("build", "-ldflags", ldflags, "-o", "bin/goview", "./cmd/goview"), withStream())
	return err
}

// Runs go mod tidy.
func (Build) Tidy() error {
	_, err := executeCmd("go", withArgs("mod", "tidy"))
	return err
}
