package resultstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumenkit/kbscore/internal/parquet"
)

// ExportToParquet writes every stored run and field score to a pair of
// Parquet files derived from outputFile.
func ExportToParquet(ctx context.Context, store *Store, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export")
	}

	status, err := store.GetStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no scoring runs found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total scoring runs: %d\n", status.TotalRuns)
	fmt.Printf("Total field score rows: %d\n", status.TotalFieldRows)

	runs, err := store.GetAllRuns(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve scoring runs: %w", err)
	}

	fieldScores, err := store.GetAllFieldScores(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve field scores: %w", err)
	}

	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetFieldScores := parquet.ConvertFieldScoreRecords(fieldScores)

	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteScoringRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write scoring runs: %w", err)
	}
	fmt.Printf("Exported %d scoring runs to: %s\n", len(parquetRuns), runsFile)

	fieldScoresFile := outputFile + ".field_scores.parquet"
	if err := parquet.WriteFieldScoresParquet(parquetFieldScores, fieldScoresFile); err != nil {
		return fmt.Errorf("failed to write field scores: %w", err)
	}
	fmt.Printf("Exported %d field score rows to: %s\n", len(parquetFieldScores), fieldScoresFile)

	return nil
}
