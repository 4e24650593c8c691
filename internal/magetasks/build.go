package magetasks

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/magefile/mage/sh"
)

// LDFlags returns the linker flags that stamp build metadata into internal/version.
func LDFlags(version, commit, date string) string {
	pkg := ModulePath + "/internal/version"
	return fmt.Sprintf("-s -w -X '%[1]s.Version=%[2]s' -X '%[1]s.CommitHash=%[3]s' -X '%[1]s.BuildDate=%[4]s'",
		pkg, version, commit, date)
}

// Build compiles the nbview binary with version metadata.
func Build() error {
	PrintHeader("Build")

	date := time.Now().UTC().Format(time.RFC3339)
	ldflags := LDFlags(gitVersion(), gitCommit(), date)
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", BinPath, MainPackage); err != nil {
		PrintError("Build failed")
		return err
	}

	PrintSuccess("Built: " + BinPath)
	return nil
}

// Clean removes build artifacts and the coverage profile.
func Clean() error {
	PrintHeader("Clean")

	for _, path := range []string{"./bin", coverProfile} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	if err := sh.Run("go", "clean", "-testcache"); err != nil {
		PrintWarning("go clean -testcache failed: " + err.Error())
	}

	PrintSuccess("Cleaned build artifacts")
	return nil
}

func gitVersion() string {
	v, err := sh.Output("git", "describe", "--tags", "--always", "--dirty", "--match=v*")
	if err != nil || v == "" {
		return "dev"
	}
	return strings.TrimSpace(v)
}

func gitCommit() string {
	c, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil || c == "" {
		return "unknown"
	}
	return strings.TrimSpace(c)
}

// Install copies the built binary into GOBIN.
func Install() error {
	if err := Build(); err != nil {
		return err
	}
	gobin, err := sh.Output("go", "env", "GOBIN")
	if err != nil {
		return err
	}
	if gobin == "" {
		gopath, err := sh.Output("go", "env", "GOPATH")
		if err != nil {
			return err
		}
		gobin = gopath + string(os.PathSeparator) + "bin"
	}
	return sh.Copy(gobin+string(os.PathSeparator)+"nbview", BinPath)
}
