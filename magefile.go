//go:build mage
// +build mage

package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binary         = "./simpleos"
	mainPackage    = "./cmd/simpleos"
	versionVarPath = "github.com/simpleos/simpleos-cli/internal/versions.version"
)

var Default = Build

// All rebuilds from scratch, then tests and lints.
func All(ctx context.Context) {
	mg.SerialCtxDeps(ctx, Clean, Build, Test, Lint)
}

// Build compiles the shell into ./simpleos, stamping the git revision as its version.
func Build(ctx context.Context) error {
	flags, err := versionLdflags()
	if err != nil {
		return err
	}

	return sh.RunV("go", "build", "-ldflags", flags, "-o", binary, mainPackage)
}

// Run builds the shell and starts an interactive session.
func Run(ctx context.Context) error {
	mg.CtxDeps(ctx, Build)
	return sh.RunV(binary)
}

func Clean(ctx context.Context) error {
	return sh.Rm(binary)
}

func Lint(ctx context.Context) error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Tidy fixes lint findings where possible and tidies go.mod.
func Tidy(ctx context.Context) error {
	if err := sh.RunV("golangci-lint", "run", "--fix", "./..."); err != nil {
		return err
	}

	return sh.RunV("go", "mod", "tidy")
}

// Test runs every suite, with ginkgo in parallel when it is installed. REPORT=1 also writes a
// junit report.
func Test(ctx context.Context) error {
	packages := []string{"./internal/...", "./cmd/..."}

	if _, err := exec.LookPath("ginkgo"); err != nil {
		return sh.RunV("go", append([]string{"test"}, packages...)...)
	}

	args := []string{"-p"}
	if os.Getenv("REPORT") != "" {
		args = append(args, "--junit-report=report.xml")
	}

	return sh.RunV("ginkgo", append(args, packages...)...)
}

func versionLdflags() (string, error) {
	if flags := os.Getenv("LDFLAGS"); flags != "" {
		return flags, nil
	}

	sha, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("-X %s=git-%s", versionVarPath, strings.TrimSpace(sha)), nil
}
