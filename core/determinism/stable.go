// Package determinism provides primitives for guaranteeing deterministic
// scoring runs: decimal-backed money, stable sorting, ordered map iteration
// and content-addressed run IDs. Identical inputs must always produce
// byte-identical results, so all code uses these instead of Go built-ins
// wherever ordering or precision matters.
package determinism

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Money is a monetary amount in the organization's reporting currency.
// NEVER use float64 for money calculations; float64 is acceptable only for
// display and for dimensionless ratios derived from money.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal string such as "12.50".
func NewMoney(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: d}, nil
}

// MustMoney creates a Money from a decimal string and panics on parse
// failure. Intended for constants and tests.
func MustMoney(amount string) Money {
	m, err := NewMoney(amount)
	if err != nil {
		panic(fmt.Sprintf("invalid money literal %q: %v", amount, err))
	}
	return m
}

// NewMoneyFromFloat creates Money from float64 (use sparingly).
func NewMoneyFromFloat(amount float64) Money {
	return Money{amount: decimal.NewFromFloat(amount)}
}

// NewMoneyFromDecimal creates Money from a decimal value.
func NewMoneyFromDecimal(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// Zero is the zero monetary amount.
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the underlying decimal.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add adds two monetary amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub subtracts a monetary amount.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Mul multiplies by a decimal scalar.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

// MulFloat multiplies by a float64 scalar.
func (m Money) MulFloat(factor float64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromFloat(factor))}
}

// MulInt multiplies by an integer count.
func (m Money) MulInt(count int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(count)))}
}

// Div divides by a decimal scalar.
func (m Money) Div(divisor decimal.Decimal) Money {
	return Money{amount: m.amount.Div(divisor)}
}

// DivInt divides by an integer count. The divisor must be nonzero.
func (m Money) DivInt(count int) Money {
	return Money{amount: m.amount.Div(decimal.NewFromInt(int64(count)))}
}

// Ratio returns m/other as a dimensionless float64. The divisor must be
// nonzero; callers guard the zero case (undefined ratio) themselves.
func (m Money) Ratio(other Money) float64 {
	f, _ := m.amount.Div(other.amount).Float64()
	return f
}

// RoundCents rounds to two decimal places.
func (m Money) RoundCents() Money {
	return Money{amount: m.amount.Round(2)}
}

// FloorCents truncates toward zero to two decimal places. Used where
// rounding up could push a value past a guardrail.
func (m Money) FloorCents() Money {
	return Money{amount: m.amount.RoundDown(2)}
}

// Abs returns the absolute amount.
func (m Money) Abs() Money {
	return Money{amount: m.amount.Abs()}
}

// Neg returns the negated amount.
func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg()}
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative returns true if the amount is negative.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsPositive returns true if the amount is strictly positive.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Cmp compares two monetary amounts (-1, 0, 1).
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

// Min returns the smaller of two amounts.
func (m Money) Min(other Money) Money {
	if m.Cmp(other) <= 0 {
		return m
	}
	return other
}

// String returns the amount formatted to 2 decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// StringRaw returns the raw decimal string at full precision.
func (m Money) StringRaw() string {
	return m.amount.String()
}

// Float64 returns float64 (only for display and ratio math, never for
// accumulating money).
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// MarshalJSON encodes the amount as a JSON string at two decimal places so
// serialized results are stable across runs.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.amount.StringFixed(2) + `"`), nil
}

// UnmarshalJSON decodes a JSON string or bare number into Money.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	m.amount = d
	return nil
}

// StableID is a hash-based identifier that is deterministic in its inputs.
type StableID string

// IDGenerator generates stable, deterministic IDs within a namespace.
type IDGenerator struct {
	namespace string
}

// NewIDGenerator creates an ID generator with a namespace.
func NewIDGenerator(namespace string) *IDGenerator {
	return &IDGenerator{namespace: namespace}
}

// Generate creates a stable ID from the given parts.
func (g *IDGenerator) Generate(parts ...string) StableID {
	h := sha256.New()
	h.Write([]byte(g.namespace))
	h.Write([]byte{0})
	for _, part := range parts {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return StableID(hex.EncodeToString(h.Sum(nil))[:16])
}

// ContentHash is a SHA-256 hash used to fingerprint scoring inputs.
type ContentHash [32]byte

// ComputeHash computes a content hash from bytes.
func ComputeHash(data []byte) ContentHash {
	return sha256.Sum256(data)
}

// Hex returns the hash as a hex string.
func (h ContentHash) Hex() string {
	return hex.EncodeToString(h[:])
}

// SortSlice sorts a slice stably with the given ordering.
func SortSlice[T any](slice []T, less func(a, b T) bool) {
	sort.SliceStable(slice, func(i, j int) bool {
		return less(slice[i], slice[j])
	})
}

// SortedKeys returns the keys of a map in sorted order.
func SortedKeys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})
	return keys
}

// RangeMapSorted iterates over a map in sorted key order.
func RangeMapSorted[K comparable, V any](m map[K]V, fn func(K, V) bool) {
	for _, k := range SortedKeys(m) {
		if !fn(k, m[k]) {
			break
		}
	}
}

// StableMap is a map with guaranteed iteration order (sorted by key).
// Used wherever grouped data (category price indexes, matched-item sets)
// must iterate identically across runs.
type StableMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewStableMap creates an empty StableMap.
func NewStableMap[K comparable, V any]() *StableMap[K, V] {
	return &StableMap[K, V]{values: make(map[K]V)}
}

// Set adds or updates a key-value pair.
func (m *StableMap[K, V]) Set(key K, value V) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
		sort.Slice(m.keys, func(i, j int) bool {
			return fmt.Sprint(m.keys[i]) < fmt.Sprint(m.keys[j])
		})
	}
	m.values[key] = value
}

// Get retrieves a value by key.
func (m *StableMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Range iterates in stable sorted order.
func (m *StableMap[K, V]) Range(fn func(K, V) bool) {
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			break
		}
	}
}

// Keys returns all keys in sorted order.
func (m *StableMap[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of entries.
func (m *StableMap[K, V]) Len() int {
	return len(m.values)
}
