// Package mathpkg provides overflow-checked unsigned integer arithmetic for ledger amounts.
package mathpkg

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

const bits = 128

var (
	// ErrDivideByZero indicates a ratio with a zero denominator.
	ErrDivideByZero = errors.New("cannot divide by zero")
	// ErrInvalidUint128 indicates a string that is not a base 10 unsigned 128 bit integer.
	ErrInvalidUint128 = errors.New("invalid uint128")
)

// Operation names the arithmetic operation that failed.
type Operation string

// Checked operations.
const (
	Add Operation = "Add"
	Sub Operation = "Sub"
	Mul Operation = "Mul"
)

// OverflowError reports the operands of an arithmetic operation whose result
// does not fit into 128 bits or would be negative.
type OverflowError struct {
	Operation Operation
	Operand1  string
	Operand2  string
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("Cannot %s with %s and %s", e.Operation, e.Operand1, e.Operand2)
}

// Uint128 is an unsigned integer limited to 128 bits.
//
// The zero value is 0. All arithmetic fails instead of wrapping.
type Uint128 struct {
	v uint256.Int
}

// Zero returns 0.
func Zero() Uint128 {
	return Uint128{}
}

// NewUint128 returns n as Uint128.
func NewUint128(n uint64) Uint128 {
	var u Uint128
	u.v.SetUint64(n)

	return u
}

// ParseUint128 parses a base 10 string.
func ParseUint128(s string) (Uint128, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Uint128{}, fmt.Errorf("%w: empty string", ErrInvalidUint128)
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return Uint128{}, fmt.Errorf("%w: %q", ErrInvalidUint128, s)
		}
	}

	v, err := uint256.FromDecimal(s)
	if err != nil || v.BitLen() > bits {
		return Uint128{}, fmt.Errorf("%w: %q", ErrInvalidUint128, s)
	}

	return Uint128{v: *v}, nil
}

// MustParseUint128 is like ParseUint128 but panics on error. Intended for tests and constants.
func MustParseUint128(s string) Uint128 {
	u, err := ParseUint128(s)
	if err != nil {
		panic(err)
	}

	return u
}

// IsZero reports whether u is 0.
func (u Uint128) IsZero() bool {
	return u.v.IsZero()
}

// Cmp compares u and o and returns -1, 0 or +1.
func (u Uint128) Cmp(o Uint128) int {
	return u.v.Cmp(&o.v)
}

// Equal reports whether u == o.
func (u Uint128) Equal(o Uint128) bool {
	return u.v.Eq(&o.v)
}

// LessThan reports whether u < o.
func (u Uint128) LessThan(o Uint128) bool {
	return u.v.Lt(&o.v)
}

// Min returns the smaller of u and o.
func (u Uint128) Min(o Uint128) Uint128 {
	if o.LessThan(u) {
		return o
	}

	return u
}

func (u Uint128) String() string {
	return u.v.Dec()
}

// Decimal converts u into an integral decimal.
func (u Uint128) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(u.v.ToBig(), 0)
}

func (u Uint128) overflow(op Operation, o Uint128) error {
	return OverflowError{Operation: op, Operand1: u.String(), Operand2: o.String()}
}

// CheckedAdd returns u + o.
func (u Uint128) CheckedAdd(o Uint128) (Uint128, error) {
	var r Uint128
	if _, overflow := r.v.AddOverflow(&u.v, &o.v); overflow || r.v.BitLen() > bits {
		return Uint128{}, u.overflow(Add, o)
	}

	return r, nil
}

// CheckedSub returns u - o.
func (u Uint128) CheckedSub(o Uint128) (Uint128, error) {
	var r Uint128
	if _, underflow := r.v.SubOverflow(&u.v, &o.v); underflow {
		return Uint128{}, u.overflow(Sub, o)
	}

	return r, nil
}

// CheckedMul returns u * o.
func (u Uint128) CheckedMul(o Uint128) (Uint128, error) {
	var r Uint128
	if _, overflow := r.v.MulOverflow(&u.v, &o.v); overflow || r.v.BitLen() > bits {
		return Uint128{}, u.overflow(Mul, o)
	}

	return r, nil
}

// CheckedMulRatio returns floor(u * num / den).
//
// The intermediate product is computed in 256 bits, so only the final result must fit.
func (u Uint128) CheckedMulRatio(num, den Uint128) (Uint128, error) {
	if den.IsZero() {
		return Uint128{}, ErrDivideByZero
	}

	var r Uint128
	if _, overflow := r.v.MulDivOverflow(&u.v, &num.v, &den.v); overflow || r.v.BitLen() > bits {
		return Uint128{}, u.overflow(Mul, num)
	}

	return r, nil
}

// CheckedMulRatioCeil returns ceil(u * num / den).
func (u Uint128) CheckedMulRatioCeil(num, den Uint128) (Uint128, error) {
	if den.IsZero() {
		return Uint128{}, ErrDivideByZero
	}

	var product uint256.Int
	// Both operands hold at most 128 bits, the product fits into 256.
	product.Mul(&u.v, &num.v)

	var q, m uint256.Int
	q.DivMod(&product, &den.v, &m)

	if !m.IsZero() {
		q.AddUint64(&q, 1)
	}

	if q.BitLen() > bits {
		return Uint128{}, u.overflow(Mul, num)
	}

	return Uint128{v: q}, nil
}

// MarshalJSON encodes u as a decimal string.
func (u Uint128) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON accepts a decimal string or a JSON number.
func (u *Uint128) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)

	v, err := ParseUint128(s)
	if err != nil {
		return err
	}

	*u = v

	return nil
}

// Value implements driver.Valuer. Amounts are stored as TEXT.
func (u Uint128) Value() (driver.Value, error) {
	return u.String(), nil
}

// Scan implements sql.Scanner.
func (u *Uint128) Scan(src any) error {
	var s string

	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case int64:
		if v < 0 {
			return fmt.Errorf("%w: %d", ErrInvalidUint128, v)
		}

		*u = NewUint128(uint64(v))

		return nil
	case nil:
		*u = Zero()
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidUint128, src)
	}

	v, err := ParseUint128(s)
	if err != nil {
		return err
	}

	*u = v

	return nil
}
