package payout

import "github.com/alexanderramin/edpay/internal/domain"

// MentorGroup is the set of sessions belonging to one mentor.
type MentorGroup struct {
	MentorID   string
	MentorName string
	Sessions   []domain.Session
	BaseAmount float64
}

// Aggregate groups sessions by mentor id and sums each group's base amount.
//
// The group's display name is taken from the first session seen for that
// mentor in input order; later sessions with a different MentorName do not
// change it. Duplicate session ids are not collapsed.
func Aggregate(sessions []domain.Session) map[string]*MentorGroup {
	groups := make(map[string]*MentorGroup)
	for _, s := range sessions {
		g, ok := groups[s.MentorID]
		if !ok {
			g = &MentorGroup{MentorID: s.MentorID, MentorName: s.MentorName}
			groups[s.MentorID] = g
		}
		g.Sessions = append(g.Sessions, s)
		g.BaseAmount += s.BaseAmount()
	}
	return groups
}

// GroupsInOrder returns the groups of Aggregate ordered by each mentor's
// first appearance in sessions.
func GroupsInOrder(sessions []domain.Session) []*MentorGroup {
	groups := Aggregate(sessions)
	ordered := make([]*MentorGroup, 0, len(groups))
	seen := make(map[string]bool, len(groups))
	for _, s := range sessions {
		if seen[s.MentorID] {
			continue
		}
		seen[s.MentorID] = true
		ordered = append(ordered, groups[s.MentorID])
	}
	return ordered
}
