package compliance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/database/models"
	"github.com/stretchr/testify/assert"
)

func result(status models.AuditStatus) models.AuditResult {
	r := models.AuditResult{Status: status}
	r.ID = uuid.New()
	r.ControlID = uuid.New()
	return r
}

func TestSummarize(t *testing.T) {
	// two compliant, one partial, one non-compliant applicable plus one
	// not-applicable row: strict 2/4 = 50, weighted 2.5/4 = 63
	results := []models.AuditResult{
		result(models.AuditStatusCompliant),
		result(models.AuditStatusCompliant),
		result(models.AuditStatusPartial),
		result(models.AuditStatusNonCompliant),
		result(models.AuditStatusNotApplicable),
	}

	summary := Summarize(results)

	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 4, summary.Applicable)
	assert.Equal(t, 2, summary.Compliant)
	assert.Equal(t, 1, summary.Partial)
	assert.Equal(t, 1, summary.NonCompliant)
	assert.Equal(t, 1, summary.NotApplicable)
	assert.Equal(t, 50, summary.StrictPct)
	assert.Equal(t, 63, summary.WeightedPct)
	assert.Equal(t, OpinionAcceptableRisk, summary.Opinion)
}

func TestSummarizeEmptyChecklist(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.StrictPct)
	assert.Equal(t, 0, summary.WeightedPct)
	assert.Equal(t, OpinionNeedsImmediate, summary.Opinion)
}

func TestSummarizeAllNotApplicable(t *testing.T) {
	results := []models.AuditResult{
		result(models.AuditStatusNotApplicable),
		result(models.AuditStatusNotApplicable),
	}

	summary := Summarize(results)

	assert.Equal(t, 0, summary.Applicable)
	assert.Equal(t, 0, summary.StrictPct)
	assert.Equal(t, OpinionNeedsImmediate, summary.Opinion)
}

func TestSummarizeOpinionBands(t *testing.T) {
	testCases := []struct {
		compliant    int
		nonCompliant int
		expected     string
	}{
		{compliant: 4, nonCompliant: 1, expected: OpinionSecure},          // 80
		{compliant: 1, nonCompliant: 1, expected: OpinionAcceptableRisk},  // 50
		{compliant: 1, nonCompliant: 2, expected: OpinionNeedsImmediate},  // 33
		{compliant: 5, nonCompliant: 0, expected: OpinionSecure},          // 100
	}

	for _, tc := range testCases {
		var results []models.AuditResult
		for i := 0; i < tc.compliant; i++ {
			results = append(results, result(models.AuditStatusCompliant))
		}
		for i := 0; i < tc.nonCompliant; i++ {
			results = append(results, result(models.AuditStatusNonCompliant))
		}
		assert.Equal(t, tc.expected, Summarize(results).Opinion)
	}
}

func TestStatementOfApplicabilityKeepsNewestPerControl(t *testing.T) {
	controlID := uuid.New()
	otherControlID := uuid.New()

	newest := models.AuditResult{Status: models.AuditStatusCompliant}
	newest.ID = uuid.New()
	newest.ControlID = controlID
	newest.UpdatedAt = time.Now()

	older := models.AuditResult{Status: models.AuditStatusNonCompliant}
	older.ID = uuid.New()
	older.ControlID = controlID
	older.UpdatedAt = newest.UpdatedAt.Add(-time.Hour)

	other := models.AuditResult{Status: models.AuditStatusPartial}
	other.ID = uuid.New()
	other.ControlID = otherControlID

	// snapshot arrives newest first
	rows := StatementOfApplicability(
		[]models.AuditResult{newest, older, other},
		map[uuid.UUID]int{controlID: 2},
	)

	assert.Len(t, rows, 2)
	assert.Equal(t, newest.ID, rows[0].Result.ID)
	assert.Equal(t, models.AuditStatusCompliant, rows[0].Result.Status)
	assert.Equal(t, 2, rows[0].EvidenceCount)
	assert.Equal(t, other.ID, rows[1].Result.ID)
	assert.Equal(t, 0, rows[1].EvidenceCount)
}
