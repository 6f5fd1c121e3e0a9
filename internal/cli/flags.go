package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/edpay/internal/cli/formatter"
	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*chargeList)(nil)
	_ pflag.Value = (*rangeValue)(nil)
	_ pflag.Value = (*roleValue)(nil)
)

// chargeList collects repeated --charge name=amount flags in order.
type chargeList []domain.AdditionalCharge

func (c *chargeList) String() string {
	parts := make([]string, 0, len(*c))
	for _, ch := range *c {
		parts = append(parts, fmt.Sprintf("%s=%s", ch.Name, strconv.FormatFloat(ch.Amount, 'f', -1, 64)))
	}
	return strings.Join(parts, ",")
}

func (c *chargeList) Set(s string) error {
	name, amount, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("charge %q: want name=amount", s)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return fmt.Errorf("charge %q: amount: %w", s, err)
	}
	if v < 0 {
		return fmt.Errorf("charge %q: amount must not be negative", s)
	}
	*c = append(*c, domain.AdditionalCharge{Name: name, Amount: v})
	return nil
}

func (c *chargeList) Type() string { return "name=amount" }

// rangeValue accepts only the known date-range names.
type rangeValue domain.DateRange

func newRangeValue(def domain.DateRange) *rangeValue {
	r := rangeValue(def)
	return &r
}

func (r *rangeValue) String() string { return string(*r) }

func (r *rangeValue) Set(s string) error {
	switch v := domain.DateRange(strings.ToLower(strings.TrimSpace(s))); v {
	case domain.RangeLast7, domain.RangeLast15, domain.RangeLast30, domain.RangeAll:
		*r = rangeValue(v)
		return nil
	}
	return fmt.Errorf("unknown range %q (want last7, last15, last30 or all)", s)
}

func (r *rangeValue) Type() string { return "range" }

func (r *rangeValue) Range() domain.DateRange { return domain.DateRange(*r) }

type roleValue domain.Role

func (r *roleValue) String() string { return string(*r) }

func (r *roleValue) Set(s string) error {
	switch v := domain.Role(strings.ToLower(strings.TrimSpace(s))); v {
	case domain.RoleAdmin, domain.RoleMentor:
		*r = roleValue(v)
		return nil
	}
	return fmt.Errorf("unknown role %q (want admin or mentor)", s)
}

func (r *roleValue) Type() string { return "role" }

// percentFlag reads a percentage flag, falling back to def when unset.
func percentFlag(flags *pflag.FlagSet, name string, def float64) (float64, error) {
	if !flags.Changed(name) {
		return def, nil
	}
	v, err := flags.GetFloat64(name)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("--%s must be between 0 and 100, got %s", name, formatter.FormatPercent(v))
	}
	return v, nil
}

// intFlagPtr returns nil when the flag was not given.
func intFlagPtr(flags *pflag.FlagSet, name string) (*int, error) {
	if !flags.Changed(name) {
		return nil, nil
	}
	v, err := flags.GetInt(name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
