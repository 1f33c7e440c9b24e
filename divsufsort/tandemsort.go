package divsufsort

// trSort resolves ties among the type B* suffixes ranked in sa[0:n] by
// rank-doubling introsort, driven by a shared trBudget so that the
// worst-case pathological input (long tandem repeats) still finishes in
// bounded extra work.
func (this *DivSufSort) trSort(n, depth int32) {
	arr := this.sa
	budget := &trBudget{chance: trIlg(n) * 2 / 3, remain: n, incVal: n}

	for isad := n + depth; arr[0] > -n; isad += isad - n {
		first := int32(0)
		skip := int32(0)
		unsorted := int32(0)

		for {
			t := arr[first]

			if t < 0 {
				first -= t
				skip += t
			} else {
				if skip != 0 {
					arr[first+skip] = skip
					skip = 0
				}

				last := arr[n+t] + 1

				if last-first > 1 {
					budget.count = 0
					this.trIntroSort(n, isad, first, last, budget)

					if budget.count != 0 {
						unsorted += budget.count
					} else {
						skip = first - last
					}
				} else if last-first == 1 {
					skip = -1
				}

				first = last
			}

			if first >= n {
				break
			}
		}

		if skip != 0 {
			arr[first+skip] = skip
		}

		if unsorted == 0 {
			break
		}
	}
}

func (this *DivSufSort) trPartition(isad, first, middle, last, v int32) (int32, int32) {
	x := int32(0)
	b := middle
	arr := this.sa[isad:len(this.sa)]

	for b < last {
		if x = arr[this.sa[b]]; x != v {
			break
		}

		b++
	}

	a := b

	if a < last && x < v {
		b++

		for b < last {
			if x = arr[this.sa[b]]; x > v {
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
		if x = arr[this.sa[c]]; x != v {
			break
		}

		c--
	}

	d := c

	if b < d && x > v {
		c--

		for c > b {
			if x = arr[this.sa[c]]; x < v {
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
			if x = arr[this.sa[b]]; x > v {
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
			if x = arr[this.sa[c]]; x < v {
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

		if s > b-a {
			s = b - a
		}

		for e, f := first, b-s; s > 0; s-- {
			this.sa[e], this.sa[f] = this.sa[f], this.sa[e]
			e++
			f++
		}

		s = d - c

		if s >= last-d {
			s = last - d - 1
		}

		for e, f := b, last-s; s > 0; s-- {
			this.sa[e], this.sa[f] = this.sa[f], this.sa[e]
			e++
			f++
		}

		first += b - a
		last -= d - c
	}

	return first, last
}

func (this *DivSufSort) trIntroSort(isa, isad, first, last int32, budget *trBudget) {
	incr := isad - isa
	arr := this.sa
	limit := trIlg(last - first)
	trlink := int32(-1)

	for {
		if limit < 0 {
			if limit == -1 {
				// tandem repeat partition
				a, b := this.trPartition(isad-incr, first, first, last, last-1)

				// update ranks
				if a < last {
					for c, v := first, a-1; c < a; c++ {
						arr[isa+arr[c]] = v
					}
				}

				if b < last {
					for c, v := a, b-1; c < b; c++ {
						arr[isa+arr[c]] = v
					}
				}

				// push
				if b-a > 1 {
					this.trStack.push(0, a, b, 0, 0)
					this.trStack.push(isad-incr, first, last, -2, trlink)
					trlink = this.trStack.size() - 2
				}

				if a-first <= last-b {
					if a-first > 1 {
						this.trStack.push(isad, b, last, trIlg(last-b), trlink)
						last = a
						limit = trIlg(a - first)
					} else if last-b > 1 {
						first = b
						limit = trIlg(last - b)
					} else {
						se := this.trStack.pop()

						if se == nil {
							return
						}

						isad = se.a
						first = se.b
						last = se.c
						limit = se.d
						trlink = se.e
					}
				} else {
					if last-b > 1 {
						this.trStack.push(isad, first, a, trIlg(a-first), trlink)
						first = b
						limit = trIlg(last - b)
					} else if a-first > 1 {
						last = a
						limit = trIlg(a - first)
					} else {
						se := this.trStack.pop()

						if se == nil {
							return
						}

						isad = se.a
						first = se.b
						last = se.c
						limit = se.d
						trlink = se.e
					}
				}
			} else if limit == -2 {
				// tandem repeat copy
				se := this.trStack.pop()

				if se.d == 0 {
					this.trCopy(isa, first, se.b, se.c, last, isad-isa)
				} else {
					if trlink >= 0 {
						this.trStack.get(trlink).d = -1
					}

					this.trPartialCopy(isa, first, se.b, se.c, last, isad-isa)
				}

				if se = this.trStack.pop(); se == nil {
					return
				}

				isad = se.a
				first = se.b
				last = se.c
				limit = se.d
				trlink = se.e
			} else {
				// sorted partition
				if arr[first] >= 0 {
					a := first

					for {
						arr[isa+arr[a]] = a
						a++

						if a >= last || arr[a] < 0 {
							break
						}
					}

					first = a
				}

				if first < last {
					a := first

					for {
						arr[a] = ^arr[a]
						a++

						if arr[a] >= 0 {
							break
						}
					}

					next := int32(-1)

					if arr[isa+arr[a]] != arr[isad+arr[a]] {
						next = trIlg(a - first + 1)
					}

					a++

					if a < last {
						v := a - 1

						for b := first; b < a; b++ {
							arr[isa+arr[b]] = v
						}
					}

					// push
					if budget.check(a - first) {
						if a-first <= last-a {
							this.trStack.push(isad, a, last, -3, trlink)
							isad += incr
							last = a
							limit = next
						} else {
							if last-a > 1 {
								this.trStack.push(isad+incr, first, a, next, trlink)
								first = a
								limit = -3
							} else {
								isad += incr
								last = a
								limit = next
							}
						}
					} else {
						if trlink >= 0 {
							this.trStack.get(trlink).d = -1
						}

						if last-a > 1 {
							first = a
							limit = -3
						} else {
							se := this.trStack.pop()

							if se == nil {
								return
							}

							isad = se.a
							first = se.b
							last = se.c
							limit = se.d
							trlink = se.e
						}
					}
				} else {
					se := this.trStack.pop()

					if se == nil {
						return
					}

					isad = se.a
					first = se.b
					last = se.c
					limit = se.d
					trlink = se.e
				}
			}

			continue
		}

		if last-first <= trInsertionSortThreshold {
			this.trInsertionSort(isad, first, last)
			limit = -3
			continue
		}

		if limit == 0 {
			this.trHeapSort(isad, first, last-first)
			a := last - 1

			for first < a {
				b := a - 1
				x := arr[isad+arr[a]]

				for first <= b && arr[isad+arr[b]] == x {
					arr[b] = ^arr[b]
					b--
				}

				a = b
			}

			limit = -3
			continue
		}

		limit--

		// choose pivot
		pvt := trPivot(this.sa, isad, first, last)
		this.sa[first], this.sa[pvt] = this.sa[pvt], this.sa[first]

		v := arr[isad+arr[first]]

		// partition
		a, b := this.trPartition(isad, first, first+1, last, v)

		if last-first != b-a {
			next := int32(-1)

			if arr[isa+arr[a]] != v {
				next = trIlg(b - a)
			}

			v = a - 1

			// update ranks
			for c := first; c < a; c++ {
				arr[isa+arr[c]] = v
			}

			if b < last {
				v = b - 1

				for c := a; c < b; c++ {
					arr[isa+arr[c]] = v
				}
			}

			// push
			if b-a > 1 && budget.check(b-a) {
				if a-first <= last-b {
					if last-b <= b-a {
						if a-first > 1 {
							this.trStack.push(isad+incr, a, b, next, trlink)
							this.trStack.push(isad, b, last, limit, trlink)
							last = a
						} else if last-b > 1 {
							this.trStack.push(isad+incr, a, b, next, trlink)
							first = b
						} else {
							isad += incr
							first = a
							last = b
							limit = next
						}
					} else if a-first <= b-a {
						if a-first > 1 {
							this.trStack.push(isad, b, last, limit, trlink)
							this.trStack.push(isad+incr, a, b, next, trlink)
							last = a
						} else {
							this.trStack.push(isad, b, last, limit, trlink)
							isad += incr
							first = a
							last = b
							limit = next
						}
					} else {
						this.trStack.push(isad, b, last, limit, trlink)
						this.trStack.push(isad, first, a, limit, trlink)
						isad += incr
						first = a
						last = b
						limit = next
					}
				} else {
					if a-first <= b-a {
						if last-b > 1 {
							this.trStack.push(isad+incr, a, b, next, trlink)
							this.trStack.push(isad, first, a, limit, trlink)
							first = b
						} else if a-first > 1 {
							this.trStack.push(isad+incr, a, b, next, trlink)
							last = a
						} else {
							isad += incr
							first = a
							last = b
							limit = next
						}
					} else if last-b <= b-a {
						if last-b > 1 {
							this.trStack.push(isad, first, a, limit, trlink)
							this.trStack.push(isad+incr, a, b, next, trlink)
							first = b
						} else {
							this.trStack.push(isad, first, a, limit, trlink)
							isad += incr
							first = a
							last = b
							limit = next
						}
					} else {
						this.trStack.push(isad, first, a, limit, trlink)
						this.trStack.push(isad, b, last, limit, trlink)
						isad += incr
						first = a
						last = b
						limit = next
					}
				}
			} else {
				if b-a > 1 && trlink >= 0 {
					this.trStack.get(trlink).d = -1
				}

				if a-first <= last-b {
					if a-first > 1 {
						this.trStack.push(isad, b, last, limit, trlink)
						last = a
					} else if last-b > 1 {
						first = b
					} else {
						se := this.trStack.pop()

						if se == nil {
							return
						}

						isad = se.a
						first = se.b
						last = se.c
						limit = se.d
						trlink = se.e
					}
				} else {
					if last-b > 1 {
						this.trStack.push(isad, first, a, limit, trlink)
						first = b
					} else if a-first > 1 {
						last = a
					} else {
						se := this.trStack.pop()

						if se == nil {
							return
						}

						isad = se.a
						first = se.b
						last = se.c
						limit = se.d
						trlink = se.e
					}
				}
			}
		} else {
			if budget.check(last - first) {
				limit = trIlg(last - first)
				isad += incr
			} else {
				if trlink >= 0 {
					this.trStack.get(trlink).d = -1
				}

				se := this.trStack.pop()

				if se == nil {
					return
				}

				isad = se.a
				first = se.b
				last = se.c
				limit = se.d
				trlink = se.e
			}
		}
	}
}

func trPivot(buf1 []int32, isad, first, last int32) int32 {
	t := last - first
	middle := first + (t >> 1)
	buf2 := buf1[isad:]

	if t <= 512 {
		if t <= 32 {
			return trMedian3(buf1, buf2, first, middle, last-1)
		}

		t >>= 2
		return trMedian5(buf1, buf2, first, first+t, middle, last-1-t, last-1)
	}

	t >>= 3
	first = trMedian3(buf1, buf2, first, first+t, first+(t<<1))
	middle = trMedian3(buf1, buf2, middle-t, middle, middle+t)
	last = trMedian3(buf1, buf2, last-1-(t<<1), last-1-t, last-1)
	return trMedian3(buf1, buf2, first, middle, last)
}

func trMedian5(buf1, buf2 []int32, v1, v2, v3, v4, v5 int32) int32 {
	if buf2[buf1[v2]] > buf2[buf1[v3]] {
		v2, v3 = v3, v2
	}

	if buf2[buf1[v4]] > buf2[buf1[v5]] {
		v4, v5 = v5, v4
	}

	if buf2[buf1[v2]] > buf2[buf1[v4]] {
		_, v4 = v4, v2
		v3, v5 = v5, v3
	}

	if buf2[buf1[v1]] > buf2[buf1[v3]] {
		v1, v3 = v3, v1
	}

	if buf2[buf1[v1]] > buf2[buf1[v4]] {
		_, v4 = v4, v1
		v3, _ = v5, v3
	}

	if buf2[buf1[v3]] > buf2[buf1[v4]] {
		return v4
	}

	return v3
}

func trMedian3(buf1, buf2 []int32, v1, v2, v3 int32) int32 {
	if buf2[buf1[v1]] > buf2[buf1[v2]] {
		v1, v2 = v2, v1
	}

	if buf2[buf1[v2]] > buf2[buf1[v3]] {
		if buf2[buf1[v1]] > buf2[buf1[v3]] {
			return v1
		}

		return v3
	}

	return v2
}

func (this *DivSufSort) trHeapSort(isad, saIdx, size int32) {
	arr := this.sa
	m := size

	if size&1 == 0 {
		m--

		if arr[isad+arr[saIdx+(m>>1)]] < arr[isad+arr[saIdx+m]] {
			this.sa[saIdx+(m>>1)], this.sa[saIdx+m] = this.sa[saIdx+m], this.sa[saIdx+(m>>1)]
		}
	}

	buf1 := this.sa[isad:]
	buf2 := this.sa[saIdx:]

	for i := (m >> 1) - 1; i >= 0; i-- {
		trFixDown(buf1, buf2, i, m)
	}

	if size&1 == 0 {
		this.sa[saIdx], this.sa[saIdx+m] = this.sa[saIdx+m], this.sa[saIdx]
		trFixDown(buf1, buf2, 0, m)
	}

	for i := m - 1; i > 0; i-- {
		t := arr[saIdx]
		arr[saIdx] = arr[saIdx+i]
		trFixDown(buf1, buf2, 0, i)
		arr[saIdx+i] = t
	}
}

func trFixDown(buf1, buf2 []int32, i, size int32) {
	v := buf2[i]
	c := buf1[v]
	j := (i << 1) + 1

	for j < size {
		k := j
		j++
		d := buf1[buf2[k]]
		e := buf1[buf2[j]]

		if d < e {
			k = j
			d = e
		}

		if d <= c {
			break
		}

		buf2[i] = buf2[k]
		i = k
		j = (i << 1) + 1
	}

	buf2[i] = v
}

func (this *DivSufSort) trInsertionSort(isad, first, last int32) {
	buf1 := this.sa
	buf2 := this.sa[isad:]

	for a := first + 1; a < last; a++ {
		b := a - 1
		t := buf1[a]
		r := buf2[t] - buf2[buf1[b]]

		for r < 0 {
			for {
				buf1[b+1] = buf1[b]
				b--

				if b < first || buf1[b] >= 0 {
					break
				}
			}

			if b < first {
				break
			}

			r = buf2[t] - buf2[buf1[b]]
		}

		if r == 0 {
			buf1[b] = ^buf1[b]
		}

		buf1[b+1] = t
	}
}

func (this *DivSufSort) trPartialCopy(isa, first, a, b, last, depth int32) {
	buf1 := this.sa
	buf2 := this.sa[isa:]
	v := b - 1
	lastRank := int32(-1)
	newRank := int32(-1)
	d := a - 1

	for c := first; c <= d; c++ {
		s := buf1[c] - depth

		if s >= 0 && buf2[s] == v {
			d++
			buf1[d] = s
			rank := buf2[s+depth]

			if lastRank != rank {
				lastRank = rank
				newRank = d
			}

			buf2[s] = newRank
		}
	}

	lastRank = -1

	for e := d; first <= e; e-- {
		rank := buf2[buf1[e]]

		if lastRank != rank {
			lastRank = rank
			newRank = e
		}

		if newRank != rank {
			buf2[buf1[e]] = newRank
		}
	}

	lastRank = -1
	e := d + 1
	d = b

	for c := last - 1; d > e; c-- {
		s := buf1[c] - depth

		if s >= 0 && buf2[s] == v {
			d--
			buf1[d] = s
			rank := buf2[s+depth]

			if lastRank != rank {
				lastRank = rank
				newRank = d
			}

			buf2[s] = newRank
		}
	}
}

func (this *DivSufSort) trCopy(isa, first, a, b, last, depth int32) {
	buf1 := this.sa
	buf2 := this.sa[isa:]
	v := b - 1
	d := a - 1

	for c := first; c <= d; c++ {
		s := buf1[c] - depth

		if s >= 0 && buf2[s] == v {
			d++
			buf1[d] = s
			buf2[s] = d
		}
	}

	e := d + 1
	d = b

	for c := last - 1; d > e; c-- {
		s := buf1[c] - depth

		if s >= 0 && buf2[s] == v {
			d--
			buf1[d] = s
			buf2[s] = d
		}
	}
}
