//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs the unit tests of every package.
func (Test) Unit() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Runs the window-free packages only; no display or cgo toolchain required.
func (Test) Headless() error {
	_, err := executeCmd("go", withArgs("test",
		"./pkg/...",
		"./internal/camera/...",
		"./internal/interaction/...",
		"./internal/assets/...",
		"./internal/config/...",
		"./internal/logging/...",
	), withEnv("CGO_ENABLED=0"), withStream())
	return err
}
