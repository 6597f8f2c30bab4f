// Package identifiers allocates human-readable sequence codes such as
// BILL-1760450400123-0000. Codes issued by one allocator sort lexically in
// issue order.
package identifiers

import (
	"fmt"
	"sync"
	"time"
)

const (
	PrefixBill    = "BILL"
	PrefixNMR     = "NMR"
	PrefixPayment = "PAY"
)

// maxSequence is the largest tie-breaker that fits the fixed-width suffix.
const maxSequence = 9999

// Allocator issues codes of the form <prefix>-<unix millis, 13 digits>-<sequence, 4 digits>.
// Codes that share a millisecond are separated by the sequence suffix; if the
// clock stalls or moves backwards the last issued millisecond is reused.
type Allocator struct {
	mu         sync.Mutex
	now        func() time.Time
	lastMillis int64
	sequence   int
}

// NewAllocator creates an Allocator reading wall-clock time from now.
// A nil now uses time.Now.
func NewAllocator(now func() time.Time) *Allocator {
	if now == nil {
		now = time.Now
	}
	return &Allocator{now: now}
}

// Next returns the next code for prefix.
func (a *Allocator) Next(prefix string) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	millis := a.now().UnixMilli()
	switch {
	case millis > a.lastMillis:
		a.lastMillis = millis
		a.sequence = 0
	case a.sequence < maxSequence:
		a.sequence++
	default:
		// Suffix exhausted for this millisecond; borrow the next one.
		a.lastMillis++
		a.sequence = 0
	}
	return fmt.Sprintf("%s-%013d-%04d", prefix, a.lastMillis, a.sequence)
}
