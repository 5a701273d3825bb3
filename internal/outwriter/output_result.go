package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/lumenkit/kbscore/internal/contract"
	"github.com/lumenkit/kbscore/internal/parquet"
	"github.com/lumenkit/kbscore/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteScoringResult outputs a scoring run, dispatching based on the output
// format configured.
func WriteScoringResult(result *schema.ScoringResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeResultCSV(w, result, fmtFloat)
		}, "CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("--output-file is required for parquet output")
		}
		rows := parquet.ConvertFieldResults(result)
		if err := parquet.WriteFieldScoresParquet(rows, cfg.OutputFile); err != nil {
			return err
		}
		fmt.Printf("Wrote %d field rows to %s\n", len(rows), cfg.OutputFile)
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeResultTables(w, result, cfg, fmtFloat, duration)
		}, "table")
	}
}

// writeResultTables renders the human-readable view: a summary header, the
// category table, the field table, and the top recommendations.
func writeResultTables(w io.Writer, result *schema.ScoringResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	totalLabel := contract.GetPlainLabel(result.TotalScore)
	if cfg.UseColors {
		totalLabel = contract.GetColorLabel(result.TotalScore)
	}
	fmt.Fprintf(w, "Knowledge base readiness: %s/100 (%s)\n", fmtFloat(result.TotalScore), totalLabel)
	fmt.Fprintf(w, "Vertical: %s  Fields: %d/%d complete  Critical missing: %d  Placeholders: %d\n\n",
		result.Vertical,
		result.Summary.CompletedFields, result.Summary.TotalFields,
		result.Summary.CriticalMissing, result.Summary.PlaceholderFields)

	if err := writeCategoryTable(w, result, cfg, fmtFloat); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := writeFieldTable(w, result, cfg, fmtFloat); err != nil {
		return err
	}

	if len(result.Recommendations) > 0 {
		fmt.Fprintln(w)
		if err := writeRecommendationTable(w, result.Recommendations, cfg, fmtFloat); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "\nScoring completed in %v. Schema version: %s\n", duration, result.SchemaVersion)
	return nil
}

func writeCategoryTable(w io.Writer, result *schema.ScoringResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Category", "Score", "Status", "Earned", "Possible", "Fields"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, cs := range result.Categories {
		data = append(data, []string{
			CategoryTitle(cs.Category),
			strconv.Itoa(cs.Score),
			string(cs.Status),
			fmtFloat(cs.EarnedPoints),
			fmtFloat(cs.PossiblePoints),
			fmt.Sprintf("%d/%d", cs.CompletedFields, cs.FieldCount),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeFieldTable(w io.Writer, result *schema.ScoringResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"", "Field", "Category", "Status", "Score", "Points", "Issues"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxLabel := getMaxLabelWidth(cfg.Width)
	var data [][]string
	for _, f := range result.Fields {
		data = append(data, []string{
			StatusIcon(f.Status),
			contract.TruncateLabel(f.Label, maxLabel),
			CategoryTitle(f.Category),
			StatusLabel(f.Status, cfg.UseColors),
			fmtFloat(f.Score),
			fmt.Sprintf("%s/%s", fmtFloat(f.WeightedScore), fmtFloat(f.MaxPossibleScore)),
			strconv.Itoa(len(f.Issues)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeRecommendationTable(w io.Writer, recs []schema.Recommendation, cfg *contract.Config, fmtFloat func(float64) string) error {
	limit := min(cfg.ResultLimit, len(recs))
	fmt.Fprintf(w, "Top %d recommendations:\n", limit)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Priority", "Action", "Impact"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, rec := range recs[:limit] {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			PriorityLabel(rec.Priority, cfg.UseColors),
			rec.Message,
			"+" + fmtFloat(rec.EstimatedImpact),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeResultCSV writes one row per evaluated field.
func writeResultCSV(w io.Writer, result *schema.ScoringResult, fmtFloat func(float64) string) error {
	header := []string{
		"key", "label", "category", "priority", "status",
		"existence", "completeness", "quality", "score",
		"weighted_score", "max_possible", "is_placeholder", "is_generic", "issues",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, f := range result.Fields {
			row := []string{
				f.Key,
				f.Label,
				string(f.Category),
				string(f.Priority),
				string(f.Status),
				fmtFloat(f.ExistenceScore),
				fmtFloat(f.CompletenessScore),
				fmtFloat(f.QualityScore),
				fmtFloat(f.Score),
				fmtFloat(f.WeightedScore),
				fmtFloat(f.MaxPossibleScore),
				strconv.FormatBool(f.IsPlaceholder),
				strconv.FormatBool(f.IsGeneric),
				strconv.Itoa(len(f.Issues)),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
