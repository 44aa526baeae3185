// Command contracts-gen writes TypeScript declarations for the wire types in
// the contracts package.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/coder/guts"
	"github.com/coder/guts/config"

	"github.com/casava/admin-console/src/internal/log"
)

const contractsPackage = "github.com/casava/admin-console/src/internal/contracts"

func main() {
	out := flag.String("out", "", "Output file (default: stdout)")
	flag.Parse()

	ts, err := generate()
	if err != nil {
		log.Fatalf("Failed to generate contracts: %v", err)
	}

	if *out == "" {
		fmt.Print(ts)
		return
	}
	if err := os.WriteFile(*out, []byte(ts), 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	log.Infof("Wrote %s", *out)
}

func generate() (string, error) {
	gen, err := guts.NewGolangParser()
	if err != nil {
		return "", fmt.Errorf("failed to create parser: %w", err)
	}

	if err := gen.IncludeGenerate(contractsPackage); err != nil {
		return "", fmt.Errorf("failed to include %s: %w", contractsPackage, err)
	}

	ts, err := gen.ToTypescript()
	if err != nil {
		return "", fmt.Errorf("failed to convert to typescript: %w", err)
	}

	ts.ApplyMutations(
		config.EnumAsTypes,
		config.ExportTypes,
		config.ReadOnly,
	)

	output, err := ts.Serialize()
	if err != nil {
		return "", fmt.Errorf("failed to serialize: %w", err)
	}
	return output, nil
}
