package payout

import (
	"math"

	"github.com/alexanderramin/edpay/internal/domain"
)

// Default deduction rates, in percent.
const (
	DefaultPlatformFeePercentage = 5.0
	DefaultGSTPercentage         = 18.0
)

// Config controls the deductions applied by Calculate. A nil percentage
// means no deduction of that kind.
type Config struct {
	PlatformFeePercentage *float64
	GSTPercentage         *float64
	AdditionalCharges     []domain.AdditionalCharge
}

// DefaultConfig returns the 5% platform fee, 18% GST configuration with no
// additional charges.
func DefaultConfig() *Config {
	fee, gst := DefaultPlatformFeePercentage, DefaultGSTPercentage
	return &Config{PlatformFeePercentage: &fee, GSTPercentage: &gst}
}

// NewConfig builds a Config from explicit rates and charges.
func NewConfig(feePct, gstPct float64, charges ...domain.AdditionalCharge) *Config {
	return &Config{PlatformFeePercentage: &feePct, GSTPercentage: &gstPct, AdditionalCharges: charges}
}

// IsDefault reports whether cfg deducts exactly what DefaultConfig does.
func (c *Config) IsDefault() bool {
	if c == nil {
		return true
	}
	return len(c.AdditionalCharges) == 0 &&
		domain.Float64FromPtrWithDefault(0, c.PlatformFeePercentage) == DefaultPlatformFeePercentage &&
		domain.Float64FromPtrWithDefault(0, c.GSTPercentage) == DefaultGSTPercentage
}

// Result is every intermediate of a payout calculation.
type Result struct {
	Base        float64
	PlatformFee float64
	Subtotal    float64
	GST         float64
	Extras      float64
	Payout      float64
	Total       int
}

// Calculate returns the rounded payout for sessions. A nil cfg means
// DefaultConfig.
func Calculate(sessions []domain.Session, cfg *Config) int {
	return Breakdown(sessions, cfg).Total
}

// Breakdown runs the payout pipeline and keeps the intermediates.
//
// The order is fixed: the fee is taken from the base, GST from the post-fee
// subtotal, and flat charges last. Only the final figure is rounded, and a
// negative result is returned as is.
func Breakdown(sessions []domain.Session, cfg *Config) Result {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	var r Result
	for _, s := range sessions {
		r.Base += s.BaseAmount()
	}

	if cfg.PlatformFeePercentage != nil {
		r.PlatformFee = r.Base * *cfg.PlatformFeePercentage / 100
	}
	r.Subtotal = r.Base - r.PlatformFee

	if cfg.GSTPercentage != nil {
		r.GST = r.Subtotal * *cfg.GSTPercentage / 100
	}

	for _, c := range cfg.AdditionalCharges {
		r.Extras += c.Amount
	}

	r.Payout = r.Subtotal - r.GST - r.Extras
	r.Total = roundHalfUp(r.Payout)
	return r
}

// roundHalfUp rounds to the nearest integer with ties toward +Inf.
// x+0.5 can itself round up, so the fraction is compared instead.
func roundHalfUp(x float64) int {
	f := math.Floor(x)
	if x-f >= 0.5 {
		f++
	}
	return int(f)
}
