package contract

import "github.com/alexanderramin/edpay/internal/domain"

// GenerateReceiptRequest asks for a receipt over all of a mentor's sessions.
// Amount, when set, is used verbatim; Charges are flat deductions after tax.
type GenerateReceiptRequest struct {
	MentorID string
	Amount   *int
	Charges  []domain.AdditionalCharge
}
