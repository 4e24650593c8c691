package magetasks

import (
	"errors"
	"fmt"

	"github.com/magefile/mage/sh"
)

const golangciDisabled = "--disable=exhaustruct,varnamelen,ireturn,wrapcheck,nlreturn,gochecknoglobals,mnd,depguard,tagalign"

// LintAll runs every linter. Optional linters that are not installed are skipped.
func LintAll() error {
	var errs []error
	for _, lint := range []func() error{LintFormat, LintVet, LintStaticcheck, LintGolangci} {
		if err := lint(); err != nil && !IsCommandNotFound(err) {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	PrintSuccess("All linters passed")
	return nil
}

// LintFormat fails when any file needs gofmt.
func LintFormat() error {
	PrintHeader("Go Format")
	files, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if files != "" {
		return fmt.Errorf("files need gofmt:\n%s", files)
	}
	return nil
}

// LintVet runs go vet.
func LintVet() error {
	PrintHeader("Go Vet")
	return sh.RunV("go", "vet", "./...")
}

// LintStaticcheck runs staticcheck.
func LintStaticcheck() error {
	PrintHeader("Staticcheck")
	return optional("staticcheck", "honnef.co/go/tools/cmd/staticcheck@latest",
		sh.RunV("staticcheck", "./..."))
}

// LintGolangci runs golangci-lint.
func LintGolangci() error {
	PrintHeader("Golangci-lint")
	return optional("golangci-lint", "github.com/golangci/golangci-lint/cmd/golangci-lint@latest",
		sh.RunV("golangci-lint", "run", golangciDisabled, "--timeout=5m", "./..."))
}

// optional reports a missing tool as a warning and passes its error through.
func optional(tool, pkg string, err error) error {
	if err == nil {
		return nil
	}
	if IsCommandNotFound(err) {
		PrintWarning(fmt.Sprintf("%s not found (install: go install %s)", tool, pkg))
		return err
	}
	return fmt.Errorf("%s failed: %w", tool, err)
}

// Check runs lint, race-enabled tests and the build.
func Check() error {
	if err := LintAll(); err != nil {
		PrintWarning("Linting issues found")
	}
	if err := TestRace(); err != nil {
		return fmt.Errorf("tests failed: %w", err)
	}
	if err := Build(); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	PrintSuccess("Checks complete")
	return nil
}
