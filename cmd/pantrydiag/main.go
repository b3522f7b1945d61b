// pantrydiag walks the configured data root and prints which dataset
// files each month folder carries, for chasing "why is this section
// empty" questions without starting the server.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"pantrydash/internal/config"
	"pantrydash/internal/locator"
	"pantrydash/internal/model"
	"pantrydash/internal/parser"
)

var dataDir = flag.String("dataDir", "", "data root directory (overrides config)")

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}
	root := config.ResolveDataDir(cfg)

	fmt.Println("============================================================")
	fmt.Println("DASHBOARD DATA DIAGNOSTIC")
	fmt.Println("============================================================")
	fmt.Printf("Data root: %s\n", root)

	if _, err := os.Stat(root); err != nil {
		fmt.Println("Data root does not exist. Check data_dir in config.toml.")
		os.Exit(1)
	}

	for _, month := range model.Months() {
		fmt.Printf("\n### %s ###\n", month)
		if !locator.MonthDirExists(root, month) {
			fmt.Println("Folder missing")
			continue
		}

		for _, kind := range model.DatasetKinds() {
			path, ok := locator.Locate(root, month, kind)
			if !ok {
				fmt.Printf("%-15s -\n", kind)
				continue
			}
			fmt.Printf("%-15s %s\n", kind, filepath.Base(path))

			if kind == model.DatasetKPI {
				grid, err := parser.LoadGrid(path)
				if err != nil {
					fmt.Printf("                error reading: %v\n", err)
					continue
				}
				cols := 0
				if len(grid.Rows) > 0 {
					cols = len(grid.Rows[0])
				}
				fmt.Printf("                rows: %d, columns: %d\n", len(grid.Rows), cols)
			}
		}
	}

	fmt.Println("\n============================================================")
	fmt.Println("If a section is empty in the dashboard, its file is missing")
	fmt.Println("above or its columns do not match the expected headers.")
	fmt.Println("============================================================")
}
