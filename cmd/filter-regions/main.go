// Command filter-regions trims the attraction dataset down to the travel
// regions the app covers, rewriting the file in place as UTF-8 with BOM.
//
// Usage:
//
//	go run ./cmd/filter-regions [-in path] [-out path]
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"BudgetPilot/config/database"
	"BudgetPilot/services"
	"BudgetPilot/storage"
	"BudgetPilot/utils"
)

func main() {
	in := flag.String("in", database.AttractionFile, "dataset CSV to filter")
	out := flag.String("out", "", "output path (defaults to -in)")
	flag.Parse()
	if *out == "" {
		*out = *in
	}

	logger := utils.NewLogger()
	before, after, err := run(*in, *out, logger)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
	fmt.Printf("Filter complete: %d rows -> %d rows (removed %d)\n", before, after, before-after)
}

func run(in, out string, logger *utils.Logger) (int, int, error) {
	sheet, enc, err := storage.ReadSheet(in, storage.DefaultEncodings, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("cannot read %s with any supported encoding: %w", in, err)
	}
	logger.Info("Read %s as %s (%d rows)", in, enc, len(sheet.Records))

	// A plain utf-8 read keeps the BOM glued to the first header.
	if len(sheet.Header) > 0 {
		sheet.Header[0] = strings.TrimPrefix(sheet.Header[0], "\ufeff")
	}

	filtered, err := services.FilterSheetByRegion(sheet, services.RegionKeywords, services.RegionAddressColumns)
	if err != nil {
		return 0, 0, err
	}
	if err := storage.WriteSheetUTF8BOM(out, filtered); err != nil {
		return 0, 0, err
	}
	return len(sheet.Records), len(filtered.Records), nil
}
