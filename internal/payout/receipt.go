package payout

import "github.com/alexanderramin/edpay/internal/domain"

// ReceiptBuilder stamps receipts with ids and timestamps from its sources.
type ReceiptBuilder struct {
	Clock Clock
	IDs   IDGenerator
}

// NewReceiptBuilder returns a builder; nil sources fall back to the system
// clock and random UUIDs.
func NewReceiptBuilder(clock Clock, ids IDGenerator) *ReceiptBuilder {
	return &ReceiptBuilder{Clock: ClockOrSystem(clock), IDs: IDsOrUUID(ids)}
}

// Build creates a Pending receipt for mentor covering sessions.
//
// When amount is non-nil it is used verbatim; otherwise the payout is
// calculated with DefaultConfig. mentor.ID must be set: callers guard this
// before building.
func (b *ReceiptBuilder) Build(mentor domain.Mentor, sessions []domain.Session, amount *int) domain.Receipt {
	total := domain.IntFromPtrWithDefault(0, amount)
	if amount == nil {
		total = Calculate(sessions, nil)
	}

	return domain.Receipt{
		ID:          b.IDs.NewID(),
		MentorID:    mentor.ID,
		MentorName:  mentor.Name,
		GeneratedAt: b.Clock.Now(),
		TotalAmount: total,
		Status:      domain.ReceiptPending,
		Sessions:    domain.SessionIDs(sessions),
	}
}
