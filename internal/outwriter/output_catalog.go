package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/lumenkit/kbscore/internal/contract"
	"github.com/lumenkit/kbscore/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteCatalog prints the vertical-resolved field catalog.
func WriteCatalog(fields []schema.ScoreableField, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, fields)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCatalogCSV(w, fields)
		}, "CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCatalogTable(w, fields, cfg)
		}, "table")
	}
}

func writeCatalogTable(w io.Writer, fields []schema.ScoreableField, cfg *contract.Config) error {
	fmt.Fprintf(w, "Field catalog for vertical %q (%d fields)\n\n", cfg.Vertical, len(fields))

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Key", "Label", "Category", "Weight", "Priority", "Requirement", "Source"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, f := range fields {
		data = append(data, []string{
			f.Key,
			f.Label,
			CategoryTitle(f.Category),
			strconv.Itoa(f.Weight),
			string(f.Priority),
			requirementText(f),
			sourceText(f.Source),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// requirementText renders the minimum/ideal thresholds of a field.
func requirementText(f schema.ScoreableField) string {
	if f.IsCountBased() {
		return fmt.Sprintf(">=%d entries", f.MinCount)
	}
	if f.IdealLength > 0 {
		return fmt.Sprintf(">=%d chars (ideal %d)", f.MinLength, f.IdealLength)
	}
	return fmt.Sprintf(">=%d chars", f.MinLength)
}

// sourceText renders the data source selector of a field.
func sourceText(src schema.DataSource) string {
	if src.RecordType == "" {
		return string(src.Collection)
	}
	return fmt.Sprintf("%s[%s]", src.Collection, src.RecordType)
}

func writeCatalogCSV(w io.Writer, fields []schema.ScoreableField) error {
	header := []string{"key", "label", "category", "weight", "priority", "min_length", "ideal_length", "min_count", "collection", "record_type"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, f := range fields {
			row := []string{
				f.Key,
				f.Label,
				string(f.Category),
				strconv.Itoa(f.Weight),
				string(f.Priority),
				strconv.Itoa(f.MinLength),
				strconv.Itoa(f.IdealLength),
				strconv.Itoa(f.MinCount),
				string(f.Source.Collection),
				f.Source.RecordType,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteRecommendations prints a ranked recommendation list on its own.
func WriteRecommendations(recs []schema.Recommendation, cfg *contract.Config) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, recs)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"priority", "field_key", "field_label", "category", "message", "suggestion", "estimated_impact"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, rec := range recs {
					row := []string{
						string(rec.Priority),
						rec.FieldKey,
						rec.FieldLabel,
						string(rec.Category),
						rec.Message,
						rec.Suggestion,
						fmtFloat(rec.EstimatedImpact),
					}
					if err := cw.Write(row); err != nil {
						return err
					}
				}
				return nil
			})
		}, "CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRecommendationTable(w, recs, cfg, fmtFloat)
		}, "table")
	}
}
