// Package contract holds the request and response shapes exchanged between
// the CLI and the service layer.
package contract

import (
	"time"

	"github.com/alexanderramin/edpay/internal/domain"
)

type AdminDashboardRequest struct {
	Range domain.DateRange
	// Now anchors the range cutoff. Nil means the service clock.
	Now *time.Time
}

func NewAdminDashboardRequest() AdminDashboardRequest {
	return AdminDashboardRequest{Range: domain.RangeLast30}
}

// MentorSummary is one row of the admin dashboard, in first-seen order.
type MentorSummary struct {
	MentorID     string
	MentorName   string
	SessionCount int
	TotalMinutes int
	BaseAmount   float64
	Payout       int
}

type SessionTypeCount struct {
	Type  string
	Count int
}

type AdminDashboardResponse struct {
	Range           domain.DateRange
	GeneratedAt     time.Time
	TotalSessions   int
	TotalPayout     int
	ActiveMentors   int
	PendingReceipts int
	Mentors         []MentorSummary
	SessionTypes    []SessionTypeCount
	Sessions        []*domain.Session
}

type MentorDashboardResponse struct {
	Mentor        *domain.Mentor
	SessionCount  int
	TotalMinutes  int
	PendingAmount int
	PendingCount  int
	PaidAmount    int
	PaidCount     int
	Sessions      []*domain.Session
	Receipts      []*domain.Receipt
}
