package risk

import (
	"math"
	"time"
)

// Compliance status labels against the periodic reassessment policy.
const (
	StatusConforme = "Conforme"
	StatusPendente = "Pendente"
)

// ReassessmentIntervalMonths is the statutory reassessment window.
const ReassessmentIntervalMonths = 24

// ComplianceStatus summarizes coverage and the next mandatory
// reassessment for one company.
type ComplianceStatus struct {
	CoveragePercent   int        `json:"cobertura_percentual"`
	Status            string     `json:"status"`
	LastAssessment    *time.Time `json:"ultima_avaliacao,omitempty"`
	NextAssessmentDue *time.Time `json:"proxima_avaliacao,omitempty"`
}

// EvaluateCompliance derives coverage and due date. An empty subject
// pool yields 0% coverage, not a division error. A nil last assessment
// leaves the due date nil: "never assessed" is distinct from "overdue".
func EvaluateCompliance(resultCount int, lastAssessment *time.Time, totalSubjects, assessedSubjects int) ComplianceStatus {
	coverage := 0
	if totalSubjects > 0 {
		coverage = int(math.Floor(float64(assessedSubjects)/float64(totalSubjects)*100 + 0.5))
	}

	status := StatusPendente
	if resultCount > 0 {
		status = StatusConforme
	}

	out := ComplianceStatus{
		CoveragePercent: coverage,
		Status:          status,
		LastAssessment:  lastAssessment,
	}
	if lastAssessment != nil {
		due := lastAssessment.AddDate(0, ReassessmentIntervalMonths, 0)
		out.NextAssessmentDue = &due
	}
	return out
}
