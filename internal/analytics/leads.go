package analytics

import (
	"field-marketing-backend/internal/database/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// StatusSlice is one non-empty bucket of the lead status distribution
type StatusSlice struct {
	Status  models.LeadStatus `json:"status"`
	Name    string            `json:"name"`
	Value   int               `json:"value"`
	Percent float64           `json:"percent"`
}

// LeadStatusDistribution partitions leads into the seven pipeline stages in
// board order. Empty stages are dropped. Leads with an unknown status are
// not counted.
func LeadStatusDistribution(leads []models.Lead) []StatusSlice {
	counts := countByStatus(leads)

	total := 0
	for _, c := range counts {
		total += c
	}

	slices := make([]StatusSlice, 0, len(models.LeadStatuses))
	for _, status := range models.LeadStatuses {
		n := counts[status]
		if n == 0 {
			continue
		}
		slices = append(slices, StatusSlice{
			Status:  status,
			Name:    status.Label(),
			Value:   n,
			Percent: float64(n) / float64(total) * 100,
		})
	}
	return slices
}

func countByStatus(leads []models.Lead) map[models.LeadStatus]int {
	counts := make(map[models.LeadStatus]int, len(models.LeadStatuses))
	for _, l := range leads {
		if l.Status.IsValid() {
			counts[l.Status]++
		}
	}
	return counts
}

// PipelineMetrics holds the monetary summary of the lead pipeline
type PipelineMetrics struct {
	TotalValue     decimal.Decimal `json:"total_value"`
	ClosedValue    decimal.Decimal `json:"closed_value"`
	TotalLeads     int             `json:"total_leads"`
	ClosedLeads    int             `json:"closed_leads"`
	ConversionRate float64         `json:"conversion_rate"`
}

// PipelineValue sums estimated values across all leads and across closed
// leads. A lead without a value contributes zero. ConversionRate is
// 100 * closed / total and 0 for an empty pipeline.
func PipelineValue(leads []models.Lead) PipelineMetrics {
	m := PipelineMetrics{
		TotalValue:  decimal.Zero,
		ClosedValue: decimal.Zero,
		TotalLeads:  len(leads),
	}
	for _, l := range leads {
		v := l.Value()
		m.TotalValue = m.TotalValue.Add(v)
		if l.Status == models.LeadStatusClosed {
			m.ClosedValue = m.ClosedValue.Add(v)
			m.ClosedLeads++
		}
	}
	if m.TotalLeads > 0 {
		m.ConversionRate = ConversionRate(m.ClosedLeads, m.TotalLeads)
	}
	return m
}

// ConversionRate returns 100 * closed / total, or 0 when total is zero
func ConversionRate(closed, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(closed) / float64(total)
}

// PipelineColumn is one stage of the lead management board
type PipelineColumn struct {
	Status models.LeadStatus `json:"status"`
	Name   string            `json:"name"`
	Count  int               `json:"count"`
	Value  decimal.Decimal   `json:"value"`
	Leads  []models.Lead     `json:"leads"`
}

// PipelineColumns places every lead in its stage column. All seven columns
// are returned in board order, empty ones included, and leads keep their
// input order inside a column.
func PipelineColumns(leads []models.Lead) []PipelineColumn {
	index := make(map[models.LeadStatus]int, len(models.LeadStatuses))
	columns := make([]PipelineColumn, len(models.LeadStatuses))
	for i, status := range models.LeadStatuses {
		index[status] = i
		columns[i] = PipelineColumn{
			Status: status,
			Name:   status.Label(),
			Value:  decimal.Zero,
			Leads:  []models.Lead{},
		}
	}

	for _, l := range leads {
		i, ok := index[l.Status]
		if !ok {
			continue
		}
		col := &columns[i]
		col.Leads = append(col.Leads, l)
		col.Count++
		col.Value = col.Value.Add(l.Value())
	}
	return columns
}

// QualifiedLeadCount counts leads in the qualified, proposal or negotiation stage
func QualifiedLeadCount(leads []models.Lead) int {
	n := 0
	for _, l := range leads {
		switch l.Status {
		case models.LeadStatusQualified, models.LeadStatusProposal, models.LeadStatusNegotiation:
			n++
		}
	}
	return n
}

// percentOf returns part as a percentage of whole, 0 when whole is zero
func percentOf(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(hundred).InexactFloat64()
}
