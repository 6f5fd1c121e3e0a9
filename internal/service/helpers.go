package service

import "github.com/alexanderramin/edpay/internal/domain"

// values copies session pointers into the value slice the payout and
// importer packages work on.
func values(sessions []*domain.Session) []domain.Session {
	out := make([]domain.Session, len(sessions))
	for i, s := range sessions {
		out[i] = *s
	}
	return out
}

func pointers(sessions []domain.Session) []*domain.Session {
	out := make([]*domain.Session, len(sessions))
	for i := range sessions {
		out[i] = &sessions[i]
	}
	return out
}
