// Package keypad models the amount entry screen: a digit buffer driven by a
// numeric keypad and the category/type selections that go with it.
package keypad

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrInvalidKey = errors.New("invalid key")
	ErrTooLong    = errors.New("amount has too many digits")
)

// MaxDigits bounds the buffer at fifteen nines, the largest amount the ledger
// accepts.
const MaxDigits = 15

// Keys lists the keypad's digit keys in display order.
var Keys = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "00", "0"}

// Buffer is the digit string typed so far. The zero value reads as "0".
// Buffers are values: Push and Pop return a new Buffer.
type Buffer struct {
	digits string
}

// String returns the digits, never empty and without leading zeros.
func (b Buffer) String() string {
	if b.digits == "" {
		return "0"
	}
	return b.digits
}

// Push appends a keypad key ("0"-"9" or "00"). Typing onto "0" replaces it.
func (b Buffer) Push(key string) (Buffer, error) {
	if !validKey(key) {
		return b, ErrInvalidKey
	}
	digits := strings.TrimLeft(b.digits+key, "0")
	if len(digits) > MaxDigits {
		return b, ErrTooLong
	}
	return Buffer{digits: digits}, nil
}

// Pop removes the last digit. Popping the only digit leaves "0".
func (b Buffer) Pop() Buffer {
	if len(b.digits) <= 1 {
		return Buffer{}
	}
	return Buffer{digits: b.digits[:len(b.digits)-1]}
}

// Amount returns the buffer's integer value.
func (b Buffer) Amount() int64 {
	if b.digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(b.digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// CanConfirm reports whether the amount is non-zero.
func (b Buffer) CanConfirm() bool {
	return b.Amount() > 0
}

func validKey(key string) bool {
	if key == "00" {
		return true
	}
	return len(key) == 1 && key[0] >= '0' && key[0] <= '9'
}
