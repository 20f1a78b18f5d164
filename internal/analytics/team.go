package analytics

import (
	"sort"

	"field-marketing-backend/internal/database/models"

	"github.com/google/uuid"
)

// TopPerformersLimit is the length of the top performers ranking
const TopPerformersLimit = 5

// StatusPartition counts team members per presence status
type StatusPartition struct {
	Online  int `json:"online"`
	Offline int `json:"offline"`
	Active  int `json:"active"`
	Total   int `json:"total"`
}

// ActiveRatio is Active/Total over the raw member count, 0 for an empty team
func (p StatusPartition) ActiveRatio() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Active) / float64(p.Total)
}

// PartitionByStatus counts members by status. Members with an unknown status
// only contribute to Total.
func PartitionByStatus(members []models.TeamMember) StatusPartition {
	p := StatusPartition{Total: len(members)}
	for _, m := range members {
		switch m.Status {
		case models.MemberStatusOnline:
			p.Online++
		case models.MemberStatusOffline:
			p.Offline++
		case models.MemberStatusActive:
			p.Active++
		}
	}
	return p
}

// MemberPerformance is one row of the team performance chart
type MemberPerformance struct {
	MemberID  uuid.UUID           `json:"member_id"`
	Name      string              `json:"name"`
	FirstName string              `json:"first_name"`
	Status    models.MemberStatus `json:"status"`
	Visits    int                 `json:"visits"`
	Leads     int                 `json:"leads"`
}

// Total is the ranking score used by TopPerformers
func (p MemberPerformance) Total() int {
	return p.Visits + p.Leads
}

// TeamPerformance counts visits and leads per member, keeping member order.
// Leads without a member are not attributed to anyone.
func TeamPerformance(members []models.TeamMember, visits []models.Visit, leads []models.Lead) []MemberPerformance {
	visitCounts := make(map[uuid.UUID]int, len(members))
	for _, v := range visits {
		visitCounts[v.TeamMemberID]++
	}
	leadCounts := make(map[uuid.UUID]int, len(members))
	for _, l := range leads {
		if l.TeamMemberID != nil {
			leadCounts[*l.TeamMemberID]++
		}
	}

	out := make([]MemberPerformance, 0, len(members))
	for _, m := range members {
		out = append(out, MemberPerformance{
			MemberID:  m.ID,
			Name:      m.Name,
			FirstName: m.FirstName(),
			Status:    m.Status,
			Visits:    visitCounts[m.ID],
			Leads:     leadCounts[m.ID],
		})
	}
	return out
}

// TopPerformers ranks by visits+leads descending. Ties keep input order.
// The input slice is not modified.
func TopPerformers(perf []MemberPerformance, n int) []MemberPerformance {
	ranked := make([]MemberPerformance, len(perf))
	copy(ranked, perf)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total() > ranked[j].Total()
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
