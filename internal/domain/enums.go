package domain

type ReceiptStatus string

const (
	ReceiptPending     ReceiptStatus = "Pending"
	ReceiptPaid        ReceiptStatus = "Paid"
	ReceiptUnderReview ReceiptStatus = "Under Review"
)

// ValidReceiptStatuses is the canonical set of accepted receipt statuses.
var ValidReceiptStatuses = map[ReceiptStatus]bool{
	ReceiptPending: true, ReceiptPaid: true, ReceiptUnderReview: true,
}

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMentor Role = "mentor"
)
