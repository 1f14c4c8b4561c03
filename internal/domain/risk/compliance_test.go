package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateComplianceEmptyCompany(t *testing.T) {
	t.Parallel()

	got := EvaluateCompliance(0, nil, 0, 0)
	assert.Equal(t, 0, got.CoveragePercent)
	assert.Equal(t, StatusPendente, got.Status)
	assert.Nil(t, got.LastAssessment)
	assert.Nil(t, got.NextAssessmentDue)
}

func TestEvaluateComplianceCoverageRounding(t *testing.T) {
	t.Parallel()

	got := EvaluateCompliance(0, nil, 3, 1)
	// 33.33 arredonda para 33
	assert.Equal(t, 33, got.CoveragePercent)

	got = EvaluateCompliance(0, nil, 8, 5)
	// 62.5 arredonda para cima
	assert.Equal(t, 63, got.CoveragePercent)
}

func TestEvaluateComplianceDueDate(t *testing.T) {
	t.Parallel()

	last := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	got := EvaluateCompliance(4, &last, 10, 8)

	assert.Equal(t, StatusConforme, got.Status)
	assert.Equal(t, 80, got.CoveragePercent)
	require.NotNil(t, got.NextAssessmentDue)
	assert.Equal(t, time.Date(2027, 6, 15, 12, 0, 0, 0, time.UTC), *got.NextAssessmentDue)
}

func TestEvaluateComplianceNeverAssessed(t *testing.T) {
	t.Parallel()

	got := EvaluateCompliance(0, nil, 10, 0)
	assert.Equal(t, StatusPendente, got.Status)
	assert.Nil(t, got.NextAssessmentDue)
}
