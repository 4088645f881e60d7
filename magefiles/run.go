//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Builds and starts the viewer with debug logging.
func (Run) Viewer() error {
	mg.Deps(Build.Binary)
	fmt.Println("Run viewer...")
	_, err := executeCmd("bin/goview", withArgs("--log-level", "debug"), withStream())
	return err
}
