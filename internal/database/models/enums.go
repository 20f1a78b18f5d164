package models

// MemberStatus is the presence state of a field team member. It is set
// explicitly and never derived from visits or leads.
type MemberStatus string

const (
	MemberStatusOnline  MemberStatus = "online"
	MemberStatusOffline MemberStatus = "offline"
	MemberStatusActive  MemberStatus = "active"
)

// MemberStatuses lists every member status in display order
var MemberStatuses = []MemberStatus{MemberStatusOnline, MemberStatusOffline, MemberStatusActive}

// LeadStatus is the pipeline stage of a lead
type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "new"
	LeadStatusContacted   LeadStatus = "contacted"
	LeadStatusQualified   LeadStatus = "qualified"
	LeadStatusProposal    LeadStatus = "proposal"
	LeadStatusNegotiation LeadStatus = "negotiation"
	LeadStatusClosed      LeadStatus = "closed"
	LeadStatusLost        LeadStatus = "lost"
)

// LeadStatuses lists the pipeline stages in board order
var LeadStatuses = []LeadStatus{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusQualified,
	LeadStatusProposal,
	LeadStatusNegotiation,
	LeadStatusClosed,
	LeadStatusLost,
}

// LeadPriority is the follow-up priority of a lead
type LeadPriority string

const (
	LeadPriorityLow    LeadPriority = "low"
	LeadPriorityMedium LeadPriority = "medium"
	LeadPriorityHigh   LeadPriority = "high"
)

// ActivityType classifies an entry of the team activity log
type ActivityType string

const (
	ActivityTypeVisit       ActivityType = "visit"
	ActivityTypeLeadCreated ActivityType = "lead_created"
	ActivityTypeLeadUpdated ActivityType = "lead_updated"
	ActivityTypeTeamUpdate  ActivityType = "team_update"
)

// IsValid checks if the MemberStatus is valid
func (s MemberStatus) IsValid() bool {
	switch s {
	case MemberStatusOnline, MemberStatusOffline, MemberStatusActive:
		return true
	}
	return false
}

// IsValid checks if the LeadStatus is valid
func (s LeadStatus) IsValid() bool {
	for _, status := range LeadStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Label returns the capitalized stage name shown on charts
func (s LeadStatus) Label() string {
	switch s {
	case LeadStatusNew:
		return "New"
	case LeadStatusContacted:
		return "Contacted"
	case LeadStatusQualified:
		return "Qualified"
	case LeadStatusProposal:
		return "Proposal"
	case LeadStatusNegotiation:
		return "Negotiation"
	case LeadStatusClosed:
		return "Closed"
	case LeadStatusLost:
		return "Lost"
	}
	return string(s)
}

// IsValid checks if the LeadPriority is valid
func (p LeadPriority) IsValid() bool {
	switch p {
	case LeadPriorityLow, LeadPriorityMedium, LeadPriorityHigh:
		return true
	}
	return false
}

// IsValid checks if the ActivityType is valid
func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityTypeVisit, ActivityTypeLeadCreated, ActivityTypeLeadUpdated, ActivityTypeTeamUpdate:
		return true
	}
	return false
}
