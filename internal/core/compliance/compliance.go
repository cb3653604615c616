// Copyright (C) 2025 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package compliance aggregates a checklist snapshot into percentage
// metrics, the statement of applicability and the report summary. All
// scoring in here is pure; the service only fetches the snapshot.
package compliance

import (
	"math"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/database/models"
)

const (
	OpinionSecure         = "Secure"
	OpinionAcceptableRisk = "Acceptable Risk"
	OpinionNeedsImmediate = "Needs Immediate Action"
)

// Summary is the aggregate over one asset's checklist. NOT_APPLICABLE rows
// shrink the applicable base instead of counting against the asset.
type Summary struct {
	Total         int    `json:"total"`
	Compliant     int    `json:"compliant"`
	Partial       int    `json:"partial"`
	NonCompliant  int    `json:"nonCompliant"`
	NotApplicable int    `json:"notApplicable"`
	Applicable    int    `json:"applicable"`
	StrictPct     int    `json:"strictPct"`
	WeightedPct   int    `json:"weightedPct"`
	Opinion       string `json:"opinion"`
}

// Summarize computes the compliance summary over a checklist snapshot.
func Summarize(results []models.AuditResult) Summary {
	summary := Summary{Total: len(results)}

	for _, result := range results {
		switch result.Status {
		case models.AuditStatusCompliant:
			summary.Compliant++
		case models.AuditStatusPartial:
			summary.Partial++
		case models.AuditStatusNonCompliant:
			summary.NonCompliant++
		case models.AuditStatusNotApplicable:
			summary.NotApplicable++
		}
	}

	summary.Applicable = summary.Total - summary.NotApplicable
	if summary.Applicable > 0 {
		summary.StrictPct = int(math.Round(100 * float64(summary.Compliant) / float64(summary.Applicable)))
		summary.WeightedPct = int(math.Round(100 * (float64(summary.Compliant) + 0.5*float64(summary.Partial)) / float64(summary.Applicable)))
	}
	summary.Opinion = opinion(summary.StrictPct)
	return summary
}

func opinion(strictPct int) string {
	switch {
	case strictPct >= 80:
		return OpinionSecure
	case strictPct >= 50:
		return OpinionAcceptableRisk
	default:
		return OpinionNeedsImmediate
	}
}

// SoARow is one line of the statement of applicability: the newest audit
// status per control plus how much evidence backs it.
type SoARow struct {
	Result        models.AuditResult
	EvidenceCount int
}

// StatementOfApplicability deduplicates a checklist snapshot to one row per
// control, keeping the newest AuditResult. The input must be ordered newest
// first, which is how the repository returns it.
func StatementOfApplicability(results []models.AuditResult, evidenceCounts map[uuid.UUID]int) []SoARow {
	seen := make(map[uuid.UUID]bool, len(results))
	rows := make([]SoARow, 0, len(results))
	for _, result := range results {
		if seen[result.ControlID] {
			continue
		}
		seen[result.ControlID] = true
		rows = append(rows, SoARow{
			Result:        result,
			EvidenceCount: evidenceCounts[result.ControlID],
		})
	}
	return rows
}
