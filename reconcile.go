package dash

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MetricSet is a named mapping of field to value representing one computation
// source for the same figures, e.g. the "balance_source" and "orders_source"
// views of the frozen amounts. Two sets sharing the same field vocabulary are
// comparable.
type MetricSet struct {
	Name   string
	Values map[string]decimal.Decimal
}

// Get returns the value of a field and whether it is present.
func (m MetricSet) Get(field string) (decimal.Decimal, bool) {
	v, ok := m.Values[field]
	return v, ok
}

// MismatchMap flags, per reconciled field, whether the two sources diverged.
type MismatchMap map[string]bool

// Any reports whether at least one field diverged.
func (m MismatchMap) Any() bool {
	for _, v := range m {
		if v {
			return true
		}
	}
	return false
}

// MissingFieldError reports a field requested for reconciliation that is
// absent from one of the two metric sets. An absent field is a schema bug,
// never a match: skipping it would be a false "all clear".
type MissingFieldError struct {
	Set   string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("metric set %q has no field %q", e.Set, e.Field)
}

// DefaultReconciledFields is the shared field vocabulary of the balance and
// order-book views of the account.
var DefaultReconciledFields = []string{
	"total_equity",
	"total_free_value",
	"total_frozen_value",
	"cash_total_value",
	"cash_free_value",
	"cash_frozen_value",
	"assets_total_value",
	"assets_free_value",
	"assets_frozen_value",
}

// Reconcile compares the requested fields of two metric sets and flags every
// divergence. The comparison is exact: both sources are derived from the same
// ledger by independent code paths and should agree to the last decimal, so
// any difference is a real bookkeeping divergence worth surfacing.
func Reconcile(a, b MetricSet, fields []string) (MismatchMap, error) {
	mm := make(MismatchMap, len(fields))
	for _, field := range fields {
		va, ok := a.Get(field)
		if !ok {
			return nil, &MissingFieldError{Set: a.Name, Field: field}
		}
		vb, ok := b.Get(field)
		if !ok {
			return nil, &MissingFieldError{Set: b.Name, Field: field}
		}
		mm[field] = !va.Equal(vb)
	}
	return mm, nil
}
