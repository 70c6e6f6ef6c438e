package payout

import (
	"fmt"
	"math"

	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/fault"
	memberDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/member"
	rotationDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/rotation"
	signatureDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/signature"
)

// Rules is the static admission configuration for payout execution.
type Rules struct {
	MemberCount      int
	BaseContribution float64
	ContributionStep float64
	RequiredRoles    []string
	CycleDays        int
}

// GateReport is the outcome of all four admission gates over prefetched data.
// Gates are side-effect-free and evaluated together so the caller can report
// every violation at once.
type GateReport struct {
	ActiveCount        int               `json:"active_count"`
	ExpectedCount      int               `json:"expected_count"`
	ContributionIssues []fault.Violation `json:"contribution_issues,omitempty"`
	Pot                float64           `json:"pot"`
	MissingRoles       []string          `json:"missing_roles,omitempty"`
}

func (g GateReport) MembershipOK() bool { return g.ActiveCount == g.ExpectedCount }
func (g GateReport) PotOK() bool        { return g.Pot > 0 }

func (g GateReport) Passed() bool {
	return g.MembershipOK() && len(g.ContributionIssues) == 0 && g.PotOK() && len(g.MissingRoles) == 0
}

// Summary lists every failed gate in one line.
func (g GateReport) Summary() string {
	if g.Passed() {
		return "all gates passed"
	}
	s := ""
	if !g.MembershipOK() {
		s += fmt.Sprintf("membership: %d active, want exactly %d; ", g.ActiveCount, g.ExpectedCount)
	}
	if len(g.ContributionIssues) > 0 {
		s += fmt.Sprintf("contributions: %d member(s) non-compliant; ", len(g.ContributionIssues))
	}
	if !g.PotOK() {
		s += fmt.Sprintf("pot: %.2f not positive; ", g.Pot)
	}
	if len(g.MissingRoles) > 0 {
		s += fmt.Sprintf("signatures: missing %v; ", g.MissingRoles)
	}
	return s[:len(s)-2]
}

const stepTolerance = 1e-9

// EvaluateGates checks the four payout admission gates:
// membership count, per-member contribution compliance, pot positivity, and
// signature completeness for the cycle's payout entity.
func EvaluateGates(
	active []memberDomain.Member,
	contributions []rotationDomain.Contribution,
	signed []signatureDomain.Signature,
	rules Rules,
) GateReport {
	report := GateReport{
		ActiveCount:   len(active),
		ExpectedCount: rules.MemberCount,
	}

	totals := make(map[uint64]float64, len(active))
	for _, c := range contributions {
		totals[c.MemberID] += c.Amount
		report.Pot += c.Amount
	}

	for _, m := range active {
		amount := totals[m.ID]
		switch {
		case amount < rules.BaseContribution:
			report.ContributionIssues = append(report.ContributionIssues, fault.Violation{
				MemberID: m.ID,
				Issue:    fmt.Sprintf("Below base %g", rules.BaseContribution),
			})
		case !multipleOf(amount, rules.ContributionStep):
			report.ContributionIssues = append(report.ContributionIssues, fault.Violation{
				MemberID: m.ID,
				Issue:    fmt.Sprintf("Not a multiple of step %g", rules.ContributionStep),
			})
		}
	}

	report.MissingRoles = signatureDomain.MissingRoles(signed, rules.RequiredRoles)
	return report
}

func multipleOf(amount, step float64) bool {
	if step <= 0 {
		return true
	}
	r := math.Mod(amount, step)
	return r < stepTolerance || step-r < stepTolerance
}
