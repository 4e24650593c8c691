package magetasks

import (
	"github.com/magefile/mage/sh"
)

const coverProfile = "coverage.out"

// TestAll runs all tests.
func TestAll() error {
	PrintHeader("Tests")
	if err := sh.RunV("go", "test", "./..."); err != nil {
		PrintError("Tests failed")
		return err
	}
	PrintSuccess("All tests passed")
	return nil
}

// TestCoverage runs tests with a coverage profile and prints the summary.
func TestCoverage() error {
	PrintHeader("Test Coverage")
	if err := sh.RunV("go", "test", "-coverprofile="+coverProfile, "./..."); err != nil {
		PrintError("Tests failed")
		return err
	}
	_ = sh.RunV("go", "tool", "cover", "-func="+coverProfile)
	PrintSuccess("Coverage written to " + coverProfile)
	return nil
}

// TestRace runs tests with the race detector. The display registry is read
// from concurrent cells, so this is part of Check.
func TestRace() error {
	PrintHeader("Race Detector")
	if err := sh.RunV("go", "test", "-race", "./..."); err != nil {
		PrintError("Race detector found issues")
		return err
	}
	PrintSuccess("No race conditions detected")
	return nil
}
