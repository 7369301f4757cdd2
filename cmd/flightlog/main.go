package main

import (
	"os"

	"github.com/ayoisaiah/flightlog/app"
	"github.com/ayoisaiah/flightlog/internal/osutil"
	"github.com/ayoisaiah/flightlog/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Error(err)
		osutil.Exit(osutil.ExitError)
	}
}
