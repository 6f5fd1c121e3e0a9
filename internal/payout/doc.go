// Package payout turns mentor sessions into settlement amounts.
//
// Everything here is a pure function over its arguments. The only impurity,
// id and timestamp generation for receipts, sits behind the Clock and
// IDGenerator interfaces so callers can pin both in tests.
package payout
