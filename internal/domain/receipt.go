package domain

import "time"

// Receipt is a point-in-time settlement snapshot. TotalAmount is fixed at
// creation and never recomputed when the covered sessions change.
type Receipt struct {
	ID          string
	MentorID    string
	MentorName  string
	GeneratedAt time.Time
	TotalAmount int
	Status      ReceiptStatus
	Sessions    []string
}

// AdditionalCharge is a flat named deduction applied after tax.
type AdditionalCharge struct {
	Name   string
	Amount float64
}
