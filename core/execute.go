package core

import (
	"context"
	"fmt"
	"time"

	"github.com/lumenkit/kbscore/internal/contract"
	"github.com/lumenkit/kbscore/internal/loader"
	"github.com/lumenkit/kbscore/internal/outwriter"
	"github.com/lumenkit/kbscore/internal/resultstore"
	"github.com/lumenkit/kbscore/schema"
)

// ExecuteScore runs the score command: load a snapshot, score it, optionally
// persist the run, and write the full report.
func ExecuteScore(ctx context.Context, cfg *contract.Config, store *resultstore.Store) error {
	start := time.Now()

	snap, err := loader.LoadSnapshot(cfg.SnapshotPath)
	if err != nil {
		return err
	}

	result := ScoreKnowledgeBase(snap, cfg.Vertical, time.Now())

	if cfg.Persist && store.Enabled() {
		runID, err := store.SaveResult(ctx, result)
		if err != nil {
			contract.LogWarn("failed to persist scoring run", err)
		} else {
			fmt.Printf("Saved scoring run %d to %s store\n", runID, store.Backend())
		}
	}

	return outwriter.WriteScoringResult(result, cfg, time.Since(start))
}

// ExecuteFields runs the fields command: print the catalog resolved for the
// configured vertical.
func ExecuteFields(_ context.Context, cfg *contract.Config) error {
	fields := GetFieldsForVertical(cfg.Vertical)
	return outwriter.WriteCatalog(fields, cfg)
}

// ExecuteRecommend runs the recommend command: score a snapshot and print only
// the ranked recommendations, truncated to the configured limit.
func ExecuteRecommend(_ context.Context, cfg *contract.Config) error {
	snap, err := loader.LoadSnapshot(cfg.SnapshotPath)
	if err != nil {
		return err
	}

	result := ScoreKnowledgeBase(snap, cfg.Vertical, time.Now())
	recs := result.Recommendations
	if len(recs) > cfg.ResultLimit {
		recs = recs[:cfg.ResultLimit]
	}
	return outwriter.WriteRecommendations(recs, cfg)
}

// ExecuteCheck runs the check command for CI/CD gating. It scores a snapshot
// and returns an error when the total score or any category score falls below
// the configured thresholds.
func ExecuteCheck(_ context.Context, cfg *contract.Config) error {
	start := time.Now()

	snap, err := loader.LoadSnapshot(cfg.SnapshotPath)
	if err != nil {
		return err
	}

	result := ScoreKnowledgeBase(snap, cfg.Vertical, time.Now())

	var violations []string
	if result.TotalScore < cfg.MinTotalScore {
		violations = append(violations, fmt.Sprintf(
			"total score %.1f is below the minimum %.1f", result.TotalScore, cfg.MinTotalScore))
	}
	if cfg.MinCategoryScore > 0 {
		for _, cat := range result.Categories {
			if float64(cat.Score) < cfg.MinCategoryScore {
				violations = append(violations, fmt.Sprintf(
					"category %s scored %d, below the minimum %.1f", cat.Category, cat.Score, cfg.MinCategoryScore))
			}
		}
	}

	printCheckSummary(result, violations, time.Since(start))

	if len(violations) > 0 {
		return fmt.Errorf("readiness check failed with %d violation(s)", len(violations))
	}
	return nil
}

func printCheckSummary(result *schema.ScoringResult, violations []string, duration time.Duration) {
	fmt.Printf("Readiness check for vertical %s\n", result.Vertical)
	fmt.Printf("Total score: %.1f (%s)\n", result.TotalScore, result.Status)
	for _, cat := range result.Categories {
		fmt.Printf("  %-12s %3d (%s)\n", cat.Category, cat.Score, cat.Status)
	}
	for _, v := range violations {
		fmt.Printf("FAIL: %s\n", v)
	}
	if len(violations) == 0 {
		fmt.Println("All thresholds satisfied")
	}
	fmt.Printf("Completed in %v\n", duration.Round(time.Millisecond))
}
