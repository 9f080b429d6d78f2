//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the fleet project using Mage.
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "fleet"
	binaryDir  = "bin"
	cmdDir     = "./cmd/fleet"

	versionVar = "github.com/mesh-intelligence/fleet/internal/cli.Version"
)

// ldflags stamps the binary with FLEET_VERSION when it is set.
func ldflags() []string {
	v := os.Getenv("FLEET_VERSION")
	if v == "" {
		return nil
	}
	return []string{"-ldflags", "-X " + versionVar + "=" + v}
}

// Build compiles the fleet binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	args := []string{"build", "-v", "-o", filepath.Join(binaryDir, binaryName)}
	args = append(args, ldflags()...)
	return sh.RunV(binGo, append(args, cmdDir)...)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

// Run builds the binary and starts the interactive shell.
func Run() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, binaryName))
}
