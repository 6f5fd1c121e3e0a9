package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/edpay/internal/contract"
	"github.com/alexanderramin/edpay/internal/db"
	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/alexanderramin/edpay/internal/payout"
	"github.com/alexanderramin/edpay/internal/repository"
)

type receiptService struct {
	receipts repository.ReceiptRepo
	sessions repository.SessionRepo
	mentors  repository.MentorRepo
	uow      db.UnitOfWork
	builder  *payout.ReceiptBuilder
	rates    *payout.Config
	observer UseCaseObserver
}

// NewReceiptService creates a ReceiptService. rates are the configured
// deduction percentages; nil means the defaults.
func NewReceiptService(
	receipts repository.ReceiptRepo,
	sessions repository.SessionRepo,
	mentors repository.MentorRepo,
	uow db.UnitOfWork,
	builder *payout.ReceiptBuilder,
	rates *payout.Config,
	observers ...UseCaseObserver,
) ReceiptService {
	if builder == nil {
		builder = payout.NewReceiptBuilder(nil, nil)
	}
	if rates == nil {
		rates = payout.DefaultConfig()
	}
	return &receiptService{
		receipts: receipts,
		sessions: sessions,
		mentors:  mentors,
		uow:      uow,
		builder:  builder,
		rates:    rates,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Generate snapshots every session of the mentor into a Pending receipt.
//
// Guards run in order: no mentor id, no sessions, unknown mentor. The total
// is req.Amount when given; otherwise the payout under the configured rates
// and req.Charges.
func (s *receiptService) Generate(ctx context.Context, req contract.GenerateReceiptRequest) (receipt *domain.Receipt, err error) {
	startedAt := time.Now()
	fields := map[string]any{"mentor_id": req.MentorID}
	defer func() {
		observe(ctx, s.observer, "generate-receipt", startedAt, &err, fields)
	}()

	mentor, sessions, err := s.resolve(ctx, req.MentorID)
	if err != nil {
		return nil, err
	}

	amount := req.Amount
	if amount == nil && (len(req.Charges) > 0 || !s.rates.IsDefault()) {
		total := payout.Calculate(values(sessions), s.withCharges(req.Charges))
		amount = &total
	}

	built := s.builder.Build(*mentor, values(sessions), amount)
	receipt = &built
	fields["receipt_id"] = receipt.ID
	fields["sessions"] = len(receipt.Sessions)
	fields["total"] = receipt.TotalAmount

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteReceiptRepo(tx).Create(ctx, receipt)
	})
	if err != nil {
		return nil, fmt.Errorf("saving receipt: %w", err)
	}
	return receipt, nil
}

// Preview calculates the payout a receipt would carry without saving it.
// A nil cfg uses the configured rates.
func (s *receiptService) Preview(ctx context.Context, mentorID string, cfg *payout.Config) (*ReceiptPreview, error) {
	mentor, sessions, err := s.resolve(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = s.rates
	}
	return &ReceiptPreview{
		Mentor:    mentor,
		Sessions:  sessions,
		Breakdown: payout.Breakdown(values(sessions), cfg),
	}, nil
}

func (s *receiptService) GetByID(ctx context.Context, id string) (*domain.Receipt, error) {
	return s.receipts.GetByID(ctx, id)
}

func (s *receiptService) List(ctx context.Context) ([]*domain.Receipt, error) {
	return s.receipts.List(ctx)
}

func (s *receiptService) ListByMentor(ctx context.Context, mentorID string) ([]*domain.Receipt, error) {
	return s.receipts.ListByMentor(ctx, mentorID)
}

func (s *receiptService) resolve(ctx context.Context, mentorID string) (*domain.Mentor, []*domain.Session, error) {
	if strings.TrimSpace(mentorID) == "" {
		return nil, nil, ErrNoMentorSelected
	}

	sessions, err := s.sessions.ListByMentor(ctx, mentorID)
	if err != nil {
		return nil, nil, err
	}
	if len(sessions) == 0 {
		return nil, nil, fmt.Errorf("%w for %s", ErrNoSessions, mentorID)
	}

	mentor, err := s.mentors.GetByID(ctx, mentorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: %s", ErrMentorNotFound, mentorID)
		}
		return nil, nil, err
	}
	return mentor, sessions, nil
}

func (s *receiptService) withCharges(charges []domain.AdditionalCharge) *payout.Config {
	return &payout.Config{
		PlatformFeePercentage: s.rates.PlatformFeePercentage,
		GSTPercentage:         s.rates.GSTPercentage,
		AdditionalCharges:     charges,
	}
}
