package ui

import (
	"net/http"
	"strconv"

	"schoolmap/domain/schools"

	"github.com/gin-gonic/gin"
	"github.com/montanaflynn/stats"
)

// columnSummary holds min/max/mean for one fully numeric column
type columnSummary struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

// handleDatasetInfo reports row/column counts and numeric column summaries
// for the current dataset. Like the map view, a missing data file degrades
// to an empty dataset rather than an error.
func (s *Server) handleDatasetInfo(c *gin.Context) {
	table, err := s.loadSchoolTable()
	if err != nil {
		s.logger.Error("failed to load schools data: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load schools data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rows":    table.Rows.Len(),
		"columns": len(table.Headers),
		"headers": table.Headers,
		"numeric": summarizeNumeric(table),
	})
}

// summarizeNumeric computes min/max/mean for every column whose non-empty
// cells all parse as floats. Columns with no parseable values are skipped.
func summarizeNumeric(table *schools.Table) map[string]columnSummary {
	summaries := make(map[string]columnSummary)

	for _, header := range table.Headers {
		values := make([]float64, 0, table.Rows.Len())
		numeric := true
		for _, row := range table.Rows {
			cell := row.Get(header)
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				numeric = false
				break
			}
			values = append(values, v)
		}
		if !numeric || len(values) == 0 {
			continue
		}

		min, err := stats.Min(values)
		if err != nil {
			continue
		}
		max, err := stats.Max(values)
		if err != nil {
			continue
		}
		mean, err := stats.Mean(values)
		if err != nil {
			continue
		}

		summaries[header] = columnSummary{Min: min, Max: max, Mean: mean}
	}

	return summaries
}
