// Package divsufsort computes suffix arrays and Burrows-Wheeler transforms
// using the two-stage divsufsort algorithm: a multikey-introsort/block-merge
// substring sort bootstraps the B* suffixes, a rank-doubling tandem-repeat
// sort resolves ties among them, and a linear induction pass expands the
// sorted B* order into the full suffix array (or, for ComputeBWT, directly
// into the transform).
package divsufsort

import (
	"github.com/dsnet/golib/errs"
)

// DivSufSort holds the working state for one suffix-array or BWT
// computation. An instance may be reused across calls; each exported entry
// point resets it before running.
type DivSufSort struct {
	sa         []int32
	buffer     []uint16
	ssStack    *stack
	trStack    *stack
	mergestack *stack
	bucketA    [256]int32
	bucketB    [65536]int32
	listener   Listener
}

// NewDivSufSort creates a reusable suffix-array/BWT engine.
func NewDivSufSort() *DivSufSort {
	this := new(DivSufSort)
	this.ssStack = newStack(ssMisortStackSize)
	this.trStack = newStack(trStackSize)
	this.mergestack = newStack(ssSmergeStackSize)
	return this
}

func (this *DivSufSort) reset() {
	this.ssStack.index = 0
	this.trStack.index = 0
	this.mergestack.index = 0

	for i := range this.bucketA {
		this.bucketA[i] = 0
	}

	for i := range this.bucketB {
		this.bucketB[i] = 0
	}
}

// widen copies the byte window [start, start+length) of src into a fresh
// uint16 buffer. Comparisons and bucket indices throughout the engine treat
// input symbols as 16-bit values, matching the original divsufsort's
// short[] buffer rather than Go's native byte width.
func widen(src []byte, start, length int32) []uint16 {
	buf := make([]uint16, length)

	for i := int32(0); i < length; i++ {
		buf[i] = uint16(src[start+i])
	}

	return buf
}

// ComputeSuffixArray fills sa[0:length] with the suffix array of
// input[start:start+length]. sa must have length capacity or more.
func (this *DivSufSort) ComputeSuffixArray(input []byte, sa []int32, start, length int32) (err error) {
	if e := checkRange(input, sa, start, length); e != nil {
		return e
	}

	defer errs.Recover(&err)

	this.buffer = widen(input, start, length)
	this.sa = sa
	this.reset()
	this.notify(EvtBucketStart, length)
	m := this.sortTypeBstar(this.bucketA[:], this.bucketB[:], length)
	this.notify(EvtInduceStart, length)
	this.constructSuffixArray(this.bucketA[:], this.bucketB[:], length, m)
	this.notify(EvtInduceEnd, length)
	return nil
}

func (this *DivSufSort) constructSuffixArray(bucketA, bucketB []int32, n, m int32) {
	if m > 0 {
		for c1 := 254; c1 >= 0; c1-- {
			idx := c1 << 8
			i := bucketB[idx+c1+1]
			k := int32(0)
			c2 := -1

			// Scan the suffix array from right to left.
			for j := bucketA[c1+1] - 1; j >= i; j-- {
				s := this.sa[j]
				this.sa[j] = ^s

				if s <= 0 {
					continue
				}

				s--
				c0 := int(this.buffer[s])

				if s > 0 && int(this.buffer[s-1]) > c0 {
					s = ^s
				}

				if c0 != c2 {
					if c2 >= 0 {
						bucketB[idx+c2] = k
					}

					c2 = c0
					k = bucketB[idx+c2]
				}

				this.sa[k] = s
				k--
			}
		}
	}

	c2 := int(this.buffer[n-1])
	k := bucketA[c2]

	if int(this.buffer[n-2]) < c2 {
		this.sa[k] = ^(n - 1)
	} else {
		this.sa[k] = n - 1
	}

	k++

	// Scan the suffix array from left to right.
	for i := int32(0); i < n; i++ {
		s := this.sa[i]

		if s <= 0 {
			this.sa[i] = ^s
			continue
		}

		s--
		c0 := int(this.buffer[s])

		if s == 0 || int(this.buffer[s-1]) < c0 {
			s = ^s
		}

		if c0 != c2 {
			bucketA[c2] = k
			c2 = c0
			k = bucketA[c2]
		}

		this.sa[k] = s
		k++
	}
}

// ComputeBWT computes the Burrows-Wheeler transform of input[start:start+length]
// into dst[start:start+length], using bwt as scratch suffix-array space and
// recording idxCount evenly spaced primary indexes into indexes. Each entry
// of indexes is one past the row of the suffix that starts its chunk, so
// indexes[0] is the returned primary index plus one. It returns the primary
// index: the row p of the suffix starting at 0, whose output byte
// dst[start+p] is the last input byte.
func (this *DivSufSort) ComputeBWT(input, dst []byte, bwt []int32, start, length int32, indexes []uint, idxCount int32) (pIdx int32, err error) {
	if e := checkRange(input, bwt, start, length); e != nil {
		return 0, e
	}

	if idxCount < 1 {
		return 0, errBadIndexCount
	}

	if int32(len(indexes)) < idxCount {
		return 0, errShortIndexes
	}

	defer errs.Recover(&err)

	this.buffer = widen(input, start, length)
	this.sa = bwt
	this.reset()
	this.notify(EvtBucketStart, length)
	m := this.sortTypeBstar(this.bucketA[:], this.bucketB[:], length)
	this.notify(EvtInduceStart, length)
	p := this.constructBWT(this.bucketA[:], this.bucketB[:], length, m, indexes, idxCount)
	this.notify(EvtInduceEnd, length)

	for i := int32(0); i < length; i++ {
		dst[start+i] = byte(bwt[i])
	}

	dst[start+p] = input[start+length-1]
	return p, nil
}

func (this *DivSufSort) constructBWT(bucketA, bucketB []int32, n, m int32, indexes []uint, idxCount int32) int32 {
	pIdx := int32(-1)
	step := n / idxCount

	if step*idxCount != n {
		step++
	}

	if m > 0 {
		for c1 := 254; c1 >= 0; c1-- {
			idx := c1 << 8
			i := bucketB[idx+c1+1]
			k := int32(0)
			c2 := -1

			// Scan the suffix array from right to left.
			for j := bucketA[c1+1] - 1; j >= i; j-- {
				s := this.sa[j]

				if s <= 0 {
					if s != 0 {
						this.sa[j] = ^s
					}

					continue
				}

				if s%step == 0 {
					indexes[s/step] = uint(j + 1)
				}

				s--
				c0 := int(this.buffer[s])
				this.sa[j] = ^int32(c0)

				if s > 0 && int(this.buffer[s-1]) > c0 {
					s = ^s
				}

				if c0 != c2 {
					if c2 >= 0 {
						bucketB[idx+c2] = k
					}

					c2 = c0
					k = bucketB[idx+c2]
				}

				this.sa[k] = s
				k--
			}
		}
	}

	c2 := int32(this.buffer[n-1])
	k := bucketA[c2]

	if int32(this.buffer[n-2]) < c2 {
		if (n-1)%step == 0 {
			indexes[(n-1)/step] = uint(n)
		}

		this.sa[k] = ^int32(this.buffer[n-2])
	} else {
		this.sa[k] = n - 1
	}

	k++

	// Scan the suffix array from left to right.
	for i := int32(0); i < n; i++ {
		s := this.sa[i]

		if s <= 0 {
			if s != 0 {
				this.sa[i] = ^s
			} else {
				pIdx = i
			}

			continue
		}

		if (s % step) == 0 {
			indexes[s/step] = uint(i + 1)
		}

		s--
		c0 := int32(this.buffer[s])
		this.sa[i] = c0

		if c0 != c2 {
			bucketA[c2] = k
			c2 = c0
			k = bucketA[c2]
		}

		if s > 0 && int32(this.buffer[s-1]) < c0 {
			if (s % step) == 0 {
				indexes[s/step] = uint(k + 1)
			}

			s = ^int32(this.buffer[s-1])
		}

		this.sa[k] = s
		k++
	}

	indexes[0] = uint(pIdx + 1)
	return pIdx
}

func (this *DivSufSort) sortTypeBstar(bucketA, bucketB []int32, n int32) int32 {
	m := n
	c0 := this.buffer[n-1]
	arr := this.sa

	// Count the number of occurrences of the first one or two characters of
	// each type A, B and B* suffix. Moreover, store the beginning position
	// of all type B* suffixes into the array SA.
	for i := n - 1; i >= 0; {
		c1 := c0

		for c0 >= c1 {
			c1 = c0
			bucketA[c1]++
			i--

			if i < 0 {
				break
			}

			c0 = this.buffer[i]
		}

		if i < 0 {
			break
		}

		bucketB[(int(c0)<<8)+int(c1)]++
		m--
		arr[m] = i
		i--
		c1 = c0

		for i >= 0 {
			c0 = this.buffer[i]

			if c0 > c1 {
				break
			}

			bucketB[(int(c1)<<8)+int(c0)]++
			c1 = c0
			i--
		}
	}

	m = n - m
	x0 := 0

	// A type B* suffix is lexicographically smaller than a type B suffix
	// that begins with the same first two characters.

	// Calculate the index of start/end point of each bucket.
	for i, j := int32(0), int32(0); x0 < 256; x0++ {
		t := i + bucketA[x0]
		bucketA[x0] = i + j // start point
		idx := x0 << 8
		i = t + bucketB[idx+x0]

		for x1 := x0 + 1; x1 < 256; x1++ {
			j += bucketB[idx+x1]
			bucketB[idx+x1] = j // end point
			i += bucketB[(x1<<8)+x0]
		}
	}

	this.notify(EvtBucketEnd, n)

	if m > 0 {
		// Sort the type B* suffixes by their first two characters.
		pab := n - m

		for i := m - 2; i >= 0; i-- {
			t := arr[pab+i]
			idx := (int(this.buffer[t]) << 8) + int(this.buffer[t+1])
			bucketB[idx]--
			arr[bucketB[idx]] = i
		}

		t := arr[pab+m-1]
		c3 := (int(this.buffer[t]) << 8) + int(this.buffer[t+1])
		bucketB[c3]--
		arr[bucketB[c3]] = m - 1

		// Sort the type B* substrings using ssSort.
		bufSize := n - m - m
		x0 = 254

		for j := m; j > 0; x0-- {
			idx := x0 << 8

			for x1 := 255; x1 > x0; x1-- {
				i := bucketB[idx+x1]

				if j-i > 1 {
					this.ssSort(pab, i, j, m, bufSize, 2, n, arr[i] == m-1)
				}

				j = i
			}
		}

		// Compute ranks of type B* substrings.
		for i := m - 1; i >= 0; i-- {
			if arr[i] >= 0 {
				j := i

				for {
					arr[m+arr[i]] = i
					i--

					if i < 0 || arr[i] < 0 {
						break
					}
				}

				arr[i+1] = i - j

				if i <= 0 {
					break
				}
			}

			j := i

			for {
				arr[i] = ^arr[i]
				arr[m+arr[i]] = j
				i--

				if arr[i] >= 0 {
					break
				}
			}

			arr[m+arr[i]] = j
		}

		this.notify(EvtSubstringSortEnd, m)

		// Construct the inverse suffix array of type B* suffixes using trSort.
		this.trSort(m, 1)
		this.notify(EvtTandemSortEnd, m)

		// Set the sorted order of type B* suffixes.
		c0 = this.buffer[n-1]
		var c1 uint16

		for i, j := n-1, m; i >= 0; {
			i--
			c1 = c0

			for i >= 0 {
				c0 = this.buffer[i]

				if c0 < c1 {
					break
				}

				c1 = c0
				i--
			}

			if i >= 0 {
				tt := i
				i--
				c1 = c0

				for i >= 0 {
					c0 = this.buffer[i]

					if c0 > c1 {
						break
					}

					c1 = c0
					i--
				}

				j--

				if tt == 0 || tt-i > 1 {
					arr[arr[m+j]] = tt
				} else {
					arr[arr[m+j]] = ^tt
				}
			}
		}

		// Calculate the index of start/end point of each bucket.
		bucketB[len(bucketB)-1] = n // end
		k := m - 1

		for x0 = 254; x0 >= 0; x0-- {
			i := bucketA[x0+1] - 1
			x2 := x0 << 8

			for x1 := 255; x1 > x0; x1-- {
				tt := i - bucketB[(x1<<8)+x0]
				bucketB[(x1<<8)+x0] = i // end point
				i = tt

				// Move all type B* suffixes to the correct position.
				// Typically very small number of copies
				for j := bucketB[x2+x1]; j <= k; {
					arr[i] = arr[k]
					i--
					k--
				}
			}

			bucketB[x2+x0+1] = i - bucketB[x2+x0] + 1 //start point
			bucketB[x2+x0] = i                        // end point
		}
	}

	return m
}
