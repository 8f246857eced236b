// Package compliance aggregates requirement state into portfolio-level
// summaries and the loan compliance score.
package compliance

import (
	"github.com/loanguard/loanguard/constants"
	"github.com/loanguard/loanguard/internal/entity"
)

// Summary is a point-in-time rollup of a loan's requirement states. Count
// maps always carry every enum member, including zeroes, so renderers never
// have to guess at missing keys.
type Summary struct {
	TotalRequirements int
	CriticalItems     int
	NonCompliantCount int
	AtRiskCount       int
	Score             int
	ByStatus          map[constants.ComplianceStatus]int
	ByCategory        map[constants.RequirementCategory]int
}

// Summarize rolls up the profile's requirements.
func Summarize(profile *entity.LoanProfile) *Summary {
	s := &Summary{
		ByStatus:   make(map[constants.ComplianceStatus]int, len(constants.AllStatuses())),
		ByCategory: make(map[constants.RequirementCategory]int, len(constants.AllCategories())),
	}
	for _, st := range constants.AllStatuses() {
		s.ByStatus[st] = 0
	}
	for _, cat := range constants.AllCategories() {
		s.ByCategory[cat] = 0
	}
	for _, req := range profile.Requirements {
		s.TotalRequirements++
		s.ByStatus[req.Status]++
		s.ByCategory[req.Category]++
		if req.Severity == constants.Critical {
			s.CriticalItems++
		}
		switch req.Status {
		case constants.NonCompliant:
			s.NonCompliantCount++
		case constants.AtRisk:
			s.AtRiskCount++
		}
	}
	s.Score = Score(profile.Requirements)
	return s
}

// CountBySeverity tallies requirements per severity, zeroes included.
func CountBySeverity(reqs []*entity.LoanRequirement) map[constants.Severity]int {
	counts := make(map[constants.Severity]int, len(constants.AllSeverities()))
	for _, sev := range constants.AllSeverities() {
		counts[sev] = 0
	}
	for _, req := range reqs {
		counts[req.Severity]++
	}
	return counts
}

// Score computes the 0-100 compliance score. A loan with no requirements
// scores 100. Compliant items count fully, at-risk items half; everything
// else counts zero. The result truncates toward zero.
func Score(reqs []*entity.LoanRequirement) int {
	if len(reqs) == 0 {
		return 100
	}
	var compliant, atRisk int
	for _, req := range reqs {
		switch req.Status {
		case constants.Compliant:
			compliant++
		case constants.AtRisk:
			atRisk++
		}
	}
	weighted := float64(compliant) + 0.5*float64(atRisk)
	return int(weighted / float64(len(reqs)) * 100)
}
