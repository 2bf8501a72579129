package domain

import "strings"

// LeadStatus is the pipeline stage shared by contacts and leads.
type LeadStatus string

const (
	LeadStatusLead     LeadStatus = "LEAD"
	LeadStatusProspect LeadStatus = "PROSPECT"
	LeadStatusCustomer LeadStatus = "CUSTOMER"
	// LeadStatusClosed is only reached by recording a sale.
	LeadStatusClosed LeadStatus = "CLOSED"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusLead, LeadStatusProspect, LeadStatusCustomer, LeadStatusClosed:
		return true
	}
	return false
}

// Assignable reports whether a client may set s directly.
func (s LeadStatus) Assignable() bool {
	return s.Valid() && s != LeadStatusClosed
}

func ParseLeadStatus(s string) (LeadStatus, bool) {
	st := LeadStatus(strings.ToUpper(strings.TrimSpace(s)))
	return st, st.Valid()
}
