package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/edpay/internal/contract"
	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/alexanderramin/edpay/internal/payout"
	"github.com/alexanderramin/edpay/internal/repository"
)

type dashboardService struct {
	sessions repository.SessionRepo
	receipts repository.ReceiptRepo
	mentors  repository.MentorRepo
	clock    payout.Clock
	rates    *payout.Config
}

func NewDashboardService(
	sessions repository.SessionRepo,
	receipts repository.ReceiptRepo,
	mentors repository.MentorRepo,
	clock payout.Clock,
	rates *payout.Config,
) DashboardService {
	if rates == nil {
		rates = payout.DefaultConfig()
	}
	return &dashboardService{
		sessions: sessions,
		receipts: receipts,
		mentors:  mentors,
		clock:    payout.ClockOrSystem(clock),
		rates:    rates,
	}
}

// Admin summarizes the sessions in the requested range. Total payout is the
// sum of each mentor's rounded payout, not the payout of the pooled sessions.
func (s *dashboardService) Admin(ctx context.Context, req contract.AdminDashboardRequest) (*contract.AdminDashboardResponse, error) {
	now := s.clock.Now()
	if req.Now != nil {
		now = *req.Now
	}
	rng := domain.ParseDateRange(string(req.Range))

	all, err := s.sessions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading sessions: %w", err)
	}
	inRange := filterByRange(all, rng, now)

	receipts, err := s.receipts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading receipts: %w", err)
	}

	resp := &contract.AdminDashboardResponse{
		Range:         rng,
		GeneratedAt:   now,
		TotalSessions: len(inRange),
		Sessions:      inRange,
	}

	for _, g := range payout.GroupsInOrder(values(inRange)) {
		summary := contract.MentorSummary{
			MentorID:     g.MentorID,
			MentorName:   g.MentorName,
			SessionCount: len(g.Sessions),
			BaseAmount:   g.BaseAmount,
			Payout:       payout.Calculate(g.Sessions, s.rates),
		}
		for _, sess := range g.Sessions {
			summary.TotalMinutes += sess.Duration
		}
		resp.TotalPayout += summary.Payout
		resp.Mentors = append(resp.Mentors, summary)
	}
	resp.ActiveMentors = len(resp.Mentors)

	for _, r := range receipts {
		if r.Status == domain.ReceiptPending {
			resp.PendingReceipts++
		}
	}

	resp.SessionTypes = countTypes(inRange)
	return resp, nil
}

// Mentor summarizes one mentor's sessions and receipts across all time.
func (s *dashboardService) Mentor(ctx context.Context, mentorID string) (*contract.MentorDashboardResponse, error) {
	if mentorID == "" {
		return nil, ErrNoMentorSelected
	}
	mentor, err := s.mentors.GetByID(ctx, mentorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrMentorNotFound, mentorID)
		}
		return nil, err
	}

	sessions, err := s.sessions.ListByMentor(ctx, mentorID)
	if err != nil {
		return nil, fmt.Errorf("loading sessions: %w", err)
	}
	receipts, err := s.receipts.ListByMentor(ctx, mentorID)
	if err != nil {
		return nil, fmt.Errorf("loading receipts: %w", err)
	}

	resp := &contract.MentorDashboardResponse{
		Mentor:       mentor,
		SessionCount: len(sessions),
		Sessions:     sessions,
		Receipts:     receipts,
	}
	for _, sess := range sessions {
		resp.TotalMinutes += sess.Duration
	}
	for _, r := range receipts {
		switch r.Status {
		case domain.ReceiptPending:
			resp.PendingAmount += r.TotalAmount
			resp.PendingCount++
		case domain.ReceiptPaid:
			resp.PaidAmount += r.TotalAmount
			resp.PaidCount++
		}
	}
	return resp, nil
}

func countTypes(sessions []*domain.Session) []contract.SessionTypeCount {
	var counts []contract.SessionTypeCount
	index := make(map[string]int)
	for _, sess := range sessions {
		i, ok := index[sess.Type]
		if !ok {
			i = len(counts)
			index[sess.Type] = i
			counts = append(counts, contract.SessionTypeCount{Type: sess.Type})
		}
		counts[i].Count++
	}
	return counts
}
