// Package output serializes batch results to the flat CSV result table.
package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/danuarta/kamusgen/internal/domain"
)

// Write serializes results to path as CSV, one row per word in slice order.
// The reference_definition column is emitted only when at least one record
// carries a reference; rows without one get an empty cell.
// Any create or write failure maps to domain.ErrWrite.
func Write(path string, results []domain.GenerationResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", domain.ErrWrite, path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	withReference := false
	for _, r := range results {
		if r.HasReference() {
			withReference = true
			break
		}
	}

	header := []string{"word", "generated_definition"}
	if withReference {
		header = append(header, "reference_definition")
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("%w: write header: %v", domain.ErrWrite, err)
	}

	for _, r := range results {
		row := []string{r.Word, r.GeneratedDefinition}
		if withReference {
			ref := ""
			if r.ReferenceDefinition != nil {
				ref = *r.ReferenceDefinition
			}
			row = append(row, ref)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("%w: write row for %q: %v", domain.ErrWrite, r.Word, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: flush %s: %v", domain.ErrWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", domain.ErrWrite, path, err)
	}
	return nil
}
