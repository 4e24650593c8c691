// nbview renders CSV data the way the notebook display adapters do.
//
// Usage:
//
//	nbview table cars93.csv
//	nbview table cars93.csv --format html > table.html
//	nbview chart cars93.csv --kind xy --x EngineSize --y Horsepower --title "Horsepower vs EngineSize"
//	nbview view cars93.csv
package main

import (
	"os"

	"github.com/dkoosis/nbview/cmd/nbview/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
