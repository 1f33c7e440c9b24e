package divsufsort

// ssSort orders the B* substrings in sa[first:last] using multikey
// introsort, falling back to a block merge sort once individual blocks are
// small enough to fit the scratch buffer at sa[buf:buf+bufSize].
func (this *DivSufSort) ssSort(pa, first, last, buf, bufSize, depth, n int32, lastSuffix bool) {
	if lastSuffix {
		first++
	}

	limit := int32(0)
	middle := last

	if bufSize < ssBlockSize && bufSize < last-first {
		limit = ssIsqrt(last - first)

		if bufSize < limit {
			if limit > ssBlockSize {
				limit = ssBlockSize
			}

			middle = last - limit
			buf = middle
			bufSize = limit
		} else {
			limit = 0
		}
	}

	var a int32
	i := int32(0)

	for a = first; middle-a > ssBlockSize; a += ssBlockSize {
		this.ssMultiKeyIntroSort(pa, a, a+ssBlockSize, depth)
		curBufSize := last - (a + ssBlockSize)
		var curBuf int32

		if curBufSize > bufSize {
			curBuf = a + ssBlockSize
		} else {
			curBufSize = bufSize
			curBuf = buf
		}

		k := ssBlockSize
		b := a

		for j := i; j&1 != 0; j >>= 1 {
			this.ssSwapMerge(pa, b-k, b, b+k, curBuf, curBufSize, depth)
			b -= k
			k <<= 1
		}

		i++
	}

	this.ssMultiKeyIntroSort(pa, a, middle, depth)
	k := ssBlockSize

	for i != 0 {
		if i&1 != 0 {
			this.ssSwapMerge(pa, a-k, a, middle, buf, bufSize, depth)
			a -= k
		}

		k <<= 1
		i >>= 1
	}

	if limit != 0 {
		this.ssMultiKeyIntroSort(pa, middle, last, depth)
		this.ssInplaceMerge(pa, first, middle, last, depth)
	}

	if lastSuffix {
		i = this.sa[first-1]
		p1 := this.sa[pa+i]
		p11 := n - 2

		for a = first; a < last && (this.sa[a] < 0 || this.ssCompare4(p1, p11, pa+this.sa[a], depth) > 0); a++ {
			this.sa[a-1] = this.sa[a]
		}

		this.sa[a-1] = i
	}
}

func (this *DivSufSort) ssCompare4(pa, pb, p2, depth int32) int {
	u1n := pb + 2
	u1 := pa + depth
	u2n := this.sa[p2+1] + 2
	u2 := this.sa[p2] + depth

	if u1n-u1 > u2n-u2 {
		for u2 < u2n && this.buffer[u1] == this.buffer[u2] {
			u1++
			u2++
		}
	} else {
		for u1 < u1n && this.buffer[u1] == this.buffer[u2] {
			u1++
			u2++
		}
	}

	if u1 < u1n {
		if u2 < u2n {
			return int(this.buffer[u1]) - int(this.buffer[u2])
		}

		return 1
	}

	if u2 < u2n {
		return -1
	}

	return 0
}

func (this *DivSufSort) ssCompare3(p1, p2, depth int32) int {
	u1n := this.sa[p1+1] + 2
	u1 := this.sa[p1] + depth
	u2n := this.sa[p2+1] + 2
	u2 := this.sa[p2] + depth
	buf := this.buffer

	if u1n-u1 > u2n-u2 {
		for u2 < u2n && buf[u1] == buf[u2] {
			u1++
			u2++
		}
	} else {
		for u1 < u1n && buf[u1] == buf[u2] {
			u1++
			u2++
		}
	}

	if u1 < u1n {
		if u2 < u2n {
			return int(buf[u1]) - int(buf[u2])
		}

		return 1
	}

	if u2 < u2n {
		return -1
	}

	return 0
}

func (this *DivSufSort) ssInplaceMerge(pa, first, middle, last, depth int32) {
	arr := this.sa

	for {
		var p, x int32

		if arr[last-1] < 0 {
			x = 1
			p = pa + ^arr[last-1]
		} else {
			x = 0
			p = pa + arr[last-1]
		}

		a := first
		r := -1
		half := (middle - first) >> 1

		for length := middle - first; length > 0; half >>= 1 {
			b := a + half
			var c int32

			if arr[b] >= 0 {
				c = arr[b]
			} else {
				c = ^arr[b]
			}

			if q := this.ssCompare3(pa+c, p, depth); q >= 0 {
				r = q
			} else {
				a = b + 1
				half -= (length & 1) ^ 1
			}

			length = half
		}

		if a < middle {
			if r == 0 {
				arr[a] = ^arr[a]
			}

			this.ssRotate(a, middle, last)
			last -= middle - a
			middle = a

			if first == middle {
				break
			}
		}

		last--

		if x != 0 {
			last--

			for arr[last] < 0 {
				last--
			}
		}

		if middle == last {
			break
		}
	}
}

func (this *DivSufSort) ssRotate(first, middle, last int32) {
	l := middle - first
	r := last - middle
	arr := this.sa

	for l > 0 && r > 0 {
		if l == r {
			this.ssBlockSwap(first, middle, l)
			break
		}

		if l < r {
			a := last - 1
			b := middle - 1
			t := arr[a]

			for {
				arr[a] = arr[b]
				a--
				arr[b] = arr[a]
				b--

				if b < first {
					arr[a] = t
					last = a
					r -= l + 1

					if r <= l {
						break
					}

					a--
					b = middle - 1
					t = arr[a]
				}
			}
		} else {
			a := first
			b := middle
			t := arr[a]

			for {
				arr[a] = arr[b]
				a++
				arr[b] = arr[a]
				b++

				if last <= b {
					arr[a] = t
					first = a + 1
					l -= r + 1

					if l <= r {
						break
					}

					a++
					b = middle
					t = arr[a]
				}
			}
		}
	}
}

func (this *DivSufSort) ssBlockSwap(a, b, n int32) {
	for n > 0 {
		this.sa[a], this.sa[b] = this.sa[b], this.sa[a]
		n--
		a++
		b++
	}
}

func getIndex(a int32) int32 {
	if a >= 0 {
		return a
	}

	return ^a
}

func (this *DivSufSort) ssSwapMerge(pa, first, middle, last, buf, bufSize, depth int32) {
	arr := this.sa
	check := int32(0)

	for {
		if last-middle <= bufSize {
			if first < middle && middle < last {
				this.ssMergeBackward(pa, first, middle, last, buf, depth)
			}

			if check&1 != 0 || (check&2 != 0 && this.ssCompare3(pa+getIndex(this.sa[first-1]),
				pa+arr[first], depth) == 0) {
				arr[first] = ^arr[first]
			}

			if check&4 != 0 && this.ssCompare3(pa+getIndex(arr[last-1]), pa+arr[last], depth) == 0 {
				arr[last] = ^arr[last]
			}

			se := this.mergestack.pop()

			if se == nil {
				return
			}

			first = se.a
			middle = se.b
			last = se.c
			check = se.d
			continue
		}

		if middle-first <= bufSize {
			if first < middle {
				this.ssMergeForward(pa, first, middle, last, buf, depth)
			}

			if check&1 != 0 || (check&2 != 0 && this.ssCompare3(pa+getIndex(arr[first-1]),
				pa+arr[first], depth) == 0) {
				arr[first] = ^arr[first]
			}

			if check&4 != 0 && this.ssCompare3(pa+getIndex(arr[last-1]), pa+arr[last], depth) == 0 {
				arr[last] = ^arr[last]
			}

			se := this.mergestack.pop()

			if se == nil {
				return
			}

			first = se.a
			middle = se.b
			last = se.c
			check = se.d
			continue
		}

		m := int32(0)
		var length int32

		if middle-first < last-middle {
			length = middle - first
		} else {
			length = last - middle
		}

		for half := length >> 1; length > 0; length, half = half, half>>1 {
			if this.ssCompare3(pa+getIndex(arr[middle+m+half]), pa+getIndex(arr[middle-m-half-1]), depth) < 0 {
				m += half + 1
				half -= (length & 1) ^ 1
			}
		}

		if m > 0 {
			lm := middle - m
			rm := middle + m
			this.ssBlockSwap(lm, middle, m)
			l := middle
			r := l
			next := int32(0)

			if rm < last {
				if arr[rm] < 0 {
					arr[rm] = ^arr[rm]

					if first < lm {
						l--

						for arr[l] < 0 {
							l--
						}

						next |= 4
					}

					next |= 1
				} else if first < lm {
					for arr[r] < 0 {
						r++
					}

					next |= 2
				}
			}

			if l-first <= last-r {
				this.mergestack.push(r, rm, last, (next&3)|(check&4), 0)
				middle = lm
				last = l
				check = (check & 3) | (next & 4)
			} else {
				if r == middle && next&2 != 0 {
					next ^= 6
				}

				this.mergestack.push(first, lm, l, (check&3)|(next&4), 0)
				first = r
				middle = rm
				check = (next & 3) | (check & 4)
			}
		} else {
			if this.ssCompare3(pa+getIndex(arr[middle-1]), pa+arr[middle], depth) == 0 {
				arr[middle] = ^arr[middle]
			}

			if check&1 != 0 || (check&2 != 0 && this.ssCompare3(pa+getIndex(this.sa[first-1]),
				pa+arr[first], depth) == 0) {
				arr[first] = ^arr[first]
			}

			if check&4 != 0 && this.ssCompare3(pa+getIndex(arr[last-1]), pa+arr[last], depth) == 0 {
				arr[last] = ^arr[last]
			}

			se := this.mergestack.pop()

			if se == nil {
				return
			}

			first = se.a
			middle = se.b
			last = se.c
			check = se.d
		}
	}
}

func (this *DivSufSort) ssMergeForward(pa, first, middle, last, buf, depth int32) {
	arr := this.sa
	bufEnd := buf + middle - first - 1
	this.ssBlockSwap(buf, first, middle-first)
	a := first
	b := buf
	c := middle
	t := arr[a]

	for {
		if r := this.ssCompare3(pa+arr[b], pa+arr[c], depth); r < 0 {
			for {
				arr[a] = arr[b]
				a++

				if bufEnd <= b {
					arr[bufEnd] = t
					return
				}

				arr[b] = arr[a]
				b++

				if arr[b] >= 0 {
					break
				}
			}
		} else if r > 0 {
			for {
				arr[a] = arr[c]
				a++
				arr[c] = arr[a]
				c++

				if last <= c {
					for b < bufEnd {
						arr[a] = arr[b]
						a++
						arr[b] = arr[a]
						b++
					}

					arr[a] = arr[b]
					arr[b] = t
					return
				}

				if arr[c] >= 0 {
					break
				}
			}
		} else {
			arr[c] = ^arr[c]

			for {
				arr[a] = arr[b]
				a++

				if bufEnd <= b {
					arr[bufEnd] = t
					return
				}

				arr[b] = arr[a]
				b++

				if arr[b] >= 0 {
					break
				}
			}

			for {
				arr[a] = arr[c]
				a++
				arr[c] = arr[a]
				c++

				if last <= c {
					for b < bufEnd {
						arr[a] = arr[b]
						a++
						arr[b] = arr[a]
						b++
					}

					arr[a] = arr[b]
					arr[b] = t
					return
				}

				if arr[c] >= 0 {
					break
				}
			}
		}
	}
}

func (this *DivSufSort) ssMergeBackward(pa, first, middle, last, buf, depth int32) {
	arr := this.sa
	bufEnd := buf + last - middle - 1
	this.ssBlockSwap(buf, middle, last-middle)
	x := int32(0)
	var p1, p2 int32

	if arr[bufEnd] < 0 {
		p1 = pa + ^arr[bufEnd]
		x |= 1
	} else {
		p1 = pa + arr[bufEnd]
	}

	if arr[middle-1] < 0 {
		p2 = pa + ^arr[middle-1]
		x |= 2
	} else {
		p2 = pa + arr[middle-1]
	}

	a := last - 1
	b := bufEnd
	c := middle - 1
	t := arr[a]

	for {
		if r := this.ssCompare3(p1, p2, depth); r > 0 {
			if x&1 != 0 {
				for {
					arr[a] = arr[b]
					a--
					arr[b] = arr[a]
					b--

					if arr[b] >= 0 {
						break
					}
				}

				x ^= 1
			}

			arr[a] = arr[b]
			a--

			if b <= buf {
				arr[buf] = t
				break
			}

			arr[b] = arr[a]
			b--

			if arr[b] < 0 {
				p1 = pa + ^arr[b]
				x |= 1
			} else {
				p1 = pa + arr[b]
			}
		} else if r < 0 {
			if x&2 != 0 {
				for {
					arr[a] = arr[c]
					a--
					arr[c] = arr[a]
					c--

					if arr[c] >= 0 {
						break
					}
				}

				x ^= 2
			}

			arr[a] = arr[c]
			a--
			arr[c] = arr[a]
			c--

			if c < first {
				for buf < b {
					arr[a] = arr[b]
					a--
					arr[b] = arr[a]
					b--
				}

				arr[a] = arr[b]
				arr[b] = t
				break
			}

			if arr[c] < 0 {
				p2 = pa + ^arr[c]
				x |= 2
			} else {
				p2 = pa + arr[c]
			}
		} else { // r = 0
			if x&1 != 0 {
				for {
					arr[a] = arr[b]
					a--
					arr[b] = arr[a]
					b--

					if arr[b] >= 0 {
						break
					}
				}

				x ^= 1
			}

			arr[a] = ^arr[b]
			a--

			if b <= buf {
				arr[buf] = t
				break
			}

			arr[b] = arr[a]
			b--

			if x&2 != 0 {
				for {
					arr[a] = arr[c]
					a--
					arr[c] = arr[a]
					c--

					if arr[c] >= 0 {
						break
					}
				}

				x ^= 2
			}

			arr[a] = arr[c]
			a--
			arr[c] = arr[a]
			c--

			if c < first {
				for buf < b {
					arr[a] = arr[b]
					a--
					arr[b] = arr[a]
					b--
				}

				arr[a] = arr[b]
				arr[b] = t
				break
			}

			if arr[b] < 0 {
				p1 = pa + ^arr[b]
				x |= 1
			} else {
				p1 = pa + arr[b]
			}

			if arr[c] < 0 {
				p2 = pa + ^arr[c]
				x |= 2
			} else {
				p2 = pa + arr[c]
			}
		}
	}
}

func (this *DivSufSort) ssInsertionSort(pa, first, last, depth int32) {
	arr := this.sa

	for i := last - 2; i >= first; i-- {
		t := pa + arr[i]
		j := i + 1
		var r int

		for r = this.ssCompare3(t, pa+arr[j], depth); r > 0; {
			for {
				arr[j-1] = arr[j]
				j++

				if j >= last || arr[j] >= 0 {
					break
				}
			}

			if j >= last {
				break
			}

			r = this.ssCompare3(t, pa+arr[j], depth)
		}

		if r == 0 {
			arr[j] = ^arr[j]
		}

		arr[j-1] = t - pa
	}
}

func (this *DivSufSort) ssMultiKeyIntroSort(pa, first, last, depth int32) {
	limit := ssIlg(last - first)
	x := uint16(0)

	for {
		if last-first <= ssInsertionSortThreshold {
			if last-first > 1 {
				this.ssInsertionSort(pa, first, last, depth)
			}

			se := this.ssStack.pop()

			if se == nil {
				return
			}

			first = se.a
			last = se.b
			depth = se.c
			limit = se.d
			continue
		}

		idx := depth

		// Create slice aliases
		// NOTE: buf1 can only replace this.buffer when the index is guaranteed
		// to be positive or zero (not in a pattern like this.buffer[xyz-1]) !!!
		buf1 := this.buffer[idx:len(this.buffer)]
		buf2 := this.sa[pa:len(this.sa)]

		if limit == 0 {
			this.ssHeapSort(idx, pa, first, last-first)
		}

		limit--
		var a int32

		if limit < 0 {
			v := buf1[buf2[this.sa[first]]]

			for a = first + 1; a < last; a++ {
				if x = buf1[buf2[this.sa[a]]]; x != v {
					if a-first > 1 {
						break
					}

					v = x
					first = a
				}
			}

			if this.buffer[idx+buf2[this.sa[first]]-1] < v {
				first = this.ssPartition(pa, first, a, depth)
			}

			if a-first <= last-a {
				if a-first > 1 {
					this.ssStack.push(a, last, depth, -1, 0)
					last = a
					depth++
					limit = ssIlg(a - first)
				} else {
					first = a
					limit = -1
				}
			} else {
				if last-a > 1 {
					this.ssStack.push(first, a, depth+1, ssIlg(a-first), 0)
					first = a
					limit = -1
				} else {
					last = a
					depth++
					limit = ssIlg(a - first)
				}
			}

			continue
		}

		// choose pivot
		a = this.ssPivot(idx, pa, first, last)

		v := buf1[buf2[this.sa[a]]]
		this.sa[a], this.sa[first] = this.sa[first], this.sa[a]
		b := first + 1

		// partition
		for b < last {
			if x = buf1[buf2[this.sa[b]]]; x != v {
				break
			}

			b++
		}

		a = b

		if a < last && x < v {
			b++

			for b < last {
				if x = buf1[buf2[this.sa[b]]]; x > v {
					break
				}

				if x == v {
					this.sa[a], this.sa[b] = this.sa[b], this.sa[a]
					a++
				}

				b++
			}
		}

		c := last - 1

		for c > b {
			if x = buf1[buf2[this.sa[c]]]; x != v {
				break
			}

			c--
		}

		d := c

		if b < d && x > v {
			c--

			for c > b {
				if x = buf1[buf2[this.sa[c]]]; x < v {
					break
				}

				if x == v {
					this.sa[c], this.sa[d] = this.sa[d], this.sa[c]
					d--
				}

				c--
			}
		}

		for b < c {
			this.sa[b], this.sa[c] = this.sa[c], this.sa[b]
			b++

			for b < c {
				if x = buf1[buf2[this.sa[b]]]; x > v {
					break
				}

				if x == v {
					this.sa[a], this.sa[b] = this.sa[b], this.sa[a]
					a++
				}

				b++
			}

			c--

			for c > b {
				if x = buf1[buf2[this.sa[c]]]; x < v {
					break
				}

				if x == v {
					this.sa[c], this.sa[d] = this.sa[d], this.sa[c]
					d--
				}

				c--
			}
		}

		if a <= d {
			c = b - 1
			s := a - first
			t := b - a

			if s > t {
				s = t
			}

			for e, f := first, b-s; s > 0; s-- {
				this.sa[e], this.sa[f] = this.sa[f], this.sa[e]
				e++
				f++
			}

			s = d - c
			t = last - d - 1

			if s > t {
				s = t
			}

			for e, f := b, last-s; s > 0; s-- {
				this.sa[e], this.sa[f] = this.sa[f], this.sa[e]
				e++
				f++
			}

			a = first + (b - a)
			c = last - (d - c)

			if v <= this.buffer[idx+buf2[this.sa[a]]-1] {
				b = a
			} else {
				b = this.ssPartition(pa, a, c, depth)
			}

			if a-first <= last-c {
				if last-c <= c-b {
					this.ssStack.push(b, c, depth+1, ssIlg(c-b), 0)
					this.ssStack.push(c, last, depth, limit, 0)
					last = a
				} else if a-first <= c-b {
					this.ssStack.push(c, last, depth, limit, 0)
					this.ssStack.push(b, c, depth+1, ssIlg(c-b), 0)
					last = a
				} else {
					this.ssStack.push(c, last, depth, limit, 0)
					this.ssStack.push(first, a, depth, limit, 0)
					first = b
					last = c
					depth++
					limit = ssIlg(c - b)
				}
			} else {
				if a-first <= c-b {
					this.ssStack.push(b, c, depth+1, ssIlg(c-b), 0)
					this.ssStack.push(first, a, depth, limit, 0)
					first = c
				} else if last-c <= c-b {
					this.ssStack.push(first, a, depth, limit, 0)
					this.ssStack.push(b, c, depth+1, ssIlg(c-b), 0)
					first = c
				} else {
					this.ssStack.push(first, a, depth, limit, 0)
					this.ssStack.push(c, last, depth, limit, 0)
					first = b
					last = c
					depth++
					limit = ssIlg(c - b)
				}
			}
		} else {
			if this.buffer[idx+buf2[this.sa[first]]-1] < v {
				first = this.ssPartition(pa, first, last, depth)
				limit = ssIlg(last - first)
			} else {
				limit++
			}

			depth++
		}
	}
}

func (this *DivSufSort) ssPivot(td, pa, first, last int32) int32 {
	t := last - first
	middle := first + (t >> 1)
	buf0 := this.buffer[td:]
	buf1 := this.sa[pa:]

	if t <= 512 {
		if t <= 32 {
			return this.ssMedian3(buf0, buf1, first, middle, last-1)
		}

		return this.ssMedian5(buf0, buf1, first, first+(t>>2), middle, last-1-(t>>2), last-1)
	}

	t >>= 3
	first = this.ssMedian3(buf0, buf1, first, first+t, first+(t<<1))
	middle = this.ssMedian3(buf0, buf1, middle-t, middle, middle+t)
	last = this.ssMedian3(buf0, buf1, last-1-(t<<1), last-1-t, last-1)
	return this.ssMedian3(buf0, buf1, first, middle, last)
}

func (this *DivSufSort) ssMedian5(buf0 []uint16, buf1 []int32, v1, v2, v3, v4, v5 int32) int32 {
	if buf0[buf1[this.sa[v2]]] > buf0[buf1[this.sa[v3]]] {
		v2, v3 = v3, v2
	}

	if buf0[buf1[this.sa[v4]]] > buf0[buf1[this.sa[v5]]] {
		v4, v5 = v5, v4
	}

	if buf0[buf1[this.sa[v2]]] > buf0[buf1[this.sa[v4]]] {
		_, v4 = v4, v2
		v3, v5 = v5, v3
	}

	if buf0[buf1[this.sa[v1]]] > buf0[buf1[this.sa[v3]]] {
		v1, v3 = v3, v1
	}

	if buf0[buf1[this.sa[v1]]] > buf0[buf1[this.sa[v4]]] {
		_, v4 = v4, v1
		v3, _ = v5, v3
	}

	if buf0[buf1[this.sa[v3]]] > buf0[buf1[this.sa[v4]]] {
		return v4
	}

	return v3
}

func (this *DivSufSort) ssMedian3(buf0 []uint16, buf1 []int32, v1, v2, v3 int32) int32 {
	if buf0[buf1[this.sa[v1]]] > buf0[buf1[this.sa[v2]]] {
		v1, v2 = v2, v1
	}

	if buf0[buf1[this.sa[v2]]] > buf0[buf1[this.sa[v3]]] {
		if buf0[buf1[this.sa[v1]]] > buf0[buf1[this.sa[v3]]] {
			return v1
		}

		return v3
	}

	return v2
}

func (this *DivSufSort) ssPartition(pa, first, last, depth int32) int32 {
	buf1 := this.sa
	buf2 := this.sa[pa:]
	a := first - 1
	b := last
	d := depth - 1

	for {
		a++

		for a < b && buf2[buf1[a]]+d >= buf2[buf1[a]+1] {
			buf1[a] = ^buf1[a]
			a++
		}

		b--

		for b > a && buf2[buf1[b]]+d < buf2[buf1[b]+1] {
			b--
		}

		if b <= a {
			break
		}

		buf1[a], buf1[b] = ^buf1[b], buf1[a]
	}

	if first < a {
		buf1[first] = ^buf1[first]
	}

	return a
}

func (this *DivSufSort) ssHeapSort(idx, pa, saIdx, size int32) {
	m := size

	if size&1 == 0 {
		m--

		if this.buffer[idx+this.sa[pa+this.sa[saIdx+(m>>1)]]] < this.buffer[idx+this.sa[pa+this.sa[saIdx+m]]] {
			this.sa[saIdx+(m>>1)], this.sa[saIdx+m] = this.sa[saIdx+m], this.sa[saIdx+(m>>1)]
		}
	}

	buf1 := this.buffer[idx:]
	buf2 := this.sa[pa:]
	buf3 := this.sa[saIdx:]

	for i := (m >> 1) - 1; i >= 0; i-- {
		this.ssFixDown(buf1, buf2, buf3, i, m)
	}

	if size&1 == 0 {
		this.sa[saIdx], this.sa[saIdx+m] = this.sa[saIdx+m], this.sa[saIdx]
		this.ssFixDown(buf1, buf2, buf3, 0, m)
	}

	for i := m - 1; i > 0; i-- {
		t := this.sa[saIdx]
		this.sa[saIdx] = this.sa[saIdx+i]
		this.ssFixDown(buf1, buf2, buf3, 0, i)
		this.sa[saIdx+i] = t
	}
}

func (this *DivSufSort) ssFixDown(buf1 []uint16, buf2, buf3 []int32, i, size int32) {
	v := buf3[i]
	c := buf1[buf2[v]]
	j := (i << 1) + 1

	for j < size {
		k := j
		j++
		d := buf1[buf2[buf3[k]]]
		e := buf1[buf2[buf3[j]]]

		if d < e {
			k = j
			d = e
		}

		if d <= c {
			break
		}

		buf3[i] = buf3[k]
		i = k
		j = (i << 1) + 1
	}

	buf3[i] = v
}
