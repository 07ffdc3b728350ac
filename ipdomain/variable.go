// Package ipdomain defines the integer-domain variable interface the
// alldiff propagator consumes, the Contradiction error it raises, and a
// bitset-backed reference implementation (IntVar) used by this module's
// tests and its CLI demo.
//
// Variable is deliberately narrow: lb/ub, membership, a next-value
// iterator, instantiation status, and the three narrowing operations
// (RemoveValue, UpdateBounds, InstantiateTo). A real solver plugs its own
// IntVar-equivalent behind this interface; nothing in this package or in
// alldiff assumes IntVar is the only implementation.
package ipdomain

import "fmt"

// Cause is the opaque token narrowing operations are tagged with.
// Diagnostics print it via String(); equality is not otherwise defined.
type Cause interface {
	String() string
}

// causeName is the trivial Cause implementation used by this module's
// own tests and CLI.
type causeName string

func (c causeName) String() string { return string(c) }

// NewCause wraps a plain name as a Cause.
func NewCause(name string) Cause { return causeName(name) }

// Contradiction signals that a narrowing operation emptied a domain, or
// that the requested narrowing was inconsistent. It is not a programming
// error: it is the expected way a propagator reports infeasibility to
// its caller, which must backtrack.
type Contradiction struct {
	VarIndex int
	Cause    Cause
	Reason   string
}

func (c *Contradiction) Error() string {
	return fmt.Sprintf("ipdomain: contradiction on var %d (cause=%v): %s", c.VarIndex, c.Cause, c.Reason)
}

// Variable is the read-only + narrowing domain interface consumed by the
// alldiff propagator.
type Variable interface {
	// Index is this variable's position in the array it was constructed
	// with.
	Index() int

	// LB and UB are the current domain bounds; both are members of the
	// domain unless the domain is empty (which narrowing never leaves
	// behind — it raises Contradiction instead).
	LB() int
	UB() int

	// DomainSize is |D(i)|.
	DomainSize() int

	// Contains reports domain membership.
	Contains(v int) bool

	// NextValue returns the smallest domain value strictly greater than
	// v, or a value > UB() if none exists (so `for v := LB(); v <= UB();
	// v = NextValue(v)` terminates).
	NextValue(v int) int

	// IsInstantiated reports whether the domain is a singleton.
	IsInstantiated() bool

	// Value returns the singleton value and true when IsInstantiated,
	// else an unspecified int and false.
	Value() (int, bool)

	// RemoveValue removes v from the domain. Returns whether the domain
	// actually changed, and a *Contradiction if the domain became empty.
	RemoveValue(v int, cause Cause) (bool, error)

	// UpdateBounds restricts the domain to [lo,hi]. Returns whether the
	// domain actually changed, and a *Contradiction if lo > hi or the
	// result is empty.
	UpdateBounds(lo, hi int, cause Cause) (bool, error)

	// InstantiateTo restricts the domain to the singleton {v}. Returns
	// whether the domain actually changed, and a *Contradiction if v is
	// not in the domain.
	InstantiateTo(v int, cause Cause) (bool, error)
}
