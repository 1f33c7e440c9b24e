package divsufsort

import (
	"errors"

	"github.com/dsnet/golib/errs"
)

// errStackOverflow marks a violation of the analytic stack-size bounds that
// the ss/tr intro-sorts are supposed to respect. It should never fire; if it
// does, this package has an implementation bug, not the caller a bad input,
// so it is surfaced through errs.Recover rather than corrupting sa.
var errStackOverflow = errors.New("divsufsort: internal stack overflow")

// stackElement is the 5-tuple continuation record shared by the ss and tr
// intro-sort implementations.
type stackElement struct {
	a, b, c, d, e int32
}

// stack is a fixed-capacity LIFO of stackElement. Its capacity is sized
// analytically by the caller (SS_MISORT_STACKSIZE, SS_SMERGE_STACKSIZE,
// TR_STACKSIZE) so that a well-formed input never overflows it.
type stack struct {
	elts  []stackElement
	index int32
}

func newStack(size int32) *stack {
	return &stack{elts: make([]stackElement, size)}
}

func (this *stack) get(idx int32) *stackElement {
	return &this.elts[idx]
}

func (this *stack) size() int32 {
	return this.index
}

func (this *stack) push(a, b, c, d, e int32) {
	errs.Assert(int(this.index) < len(this.elts), errStackOverflow)
	elt := &this.elts[this.index]
	elt.a = a
	elt.b = b
	elt.c = c
	elt.d = d
	elt.e = e
	this.index++
}

func (this *stack) pop() *stackElement {
	if this.index == 0 {
		return nil
	}

	this.index--
	return &this.elts[this.index]
}

// trBudget bounds the worst-case work performed by the tandem-repeat sort's
// doubling passes. See SPEC_FULL.md section 4.3.
type trBudget struct {
	chance int32
	remain int32
	incVal int32
	count  int32
}

func (this *trBudget) check(size int32) bool {
	if size <= this.remain {
		this.remain -= size
		return true
	}

	if this.chance == 0 {
		this.count += size
		return false
	}

	this.remain += this.incVal - size
	this.chance--
	return true
}
