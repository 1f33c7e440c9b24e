package divsufsort

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/dsnet/golib/errs"
)

const (
	// MaxBWTBlockSize is the largest block Forward/Inverse will accept.
	maxBWTBlockSize = 1024 * 1024 * 1024 // 1 GB
	maxBWTChunks    = 8
)

var errBuffersOverlap = errors.New("divsufsort: input and output buffers cannot be equal")

// BWT is a chunked Burrows-Wheeler transform codec built on top of
// DivSufSort's suffix array. Forward computes the suffix array once and
// derives the transform and its primary index(es) from it; Inverse rebuilds
// the original bytes from the transform in O(n) time using a next-symbol
// permutation, optionally splitting the work into concurrently inverted
// chunks when the codec was configured with more than one job.
//
// A block of 12 MB or more is split into up to maxBWTChunks primary
// indexes so that inversion of each chunk is independent, at the cost of a
// slightly worse compression ratio than a single global index.
type BWT struct {
	buffer1        []uint32 // inverse regular blocks
	buffer2        []byte   // inverse big/huge blocks
	buffer3        []int32  // forward scratch suffix array
	primaryIndexes [maxBWTChunks]uint
	saAlgo         *DivSufSort
	jobs           uint
	listener       Listener
}

// AddListener registers l to receive phase events from the suffix-array
// pass of subsequent Forward calls.
func (this *BWT) AddListener(l Listener) {
	this.listener = l

	if this.saAlgo != nil {
		this.saAlgo.AddListener(l)
	}
}

// NewBWT creates a single-job BWT codec.
func NewBWT() *BWT {
	this := new(BWT)
	this.jobs = 1
	return this
}

// NewBWTWithJobs creates a BWT codec that will invert multi-chunk blocks
// using up to jobs concurrent goroutines.
func NewBWTWithJobs(jobs uint) *BWT {
	this := new(BWT)

	if jobs == 0 {
		jobs = 1
	}

	this.jobs = jobs
	return this
}

func (this *BWT) PrimaryIndex(n int) uint {
	return this.primaryIndexes[n]
}

func (this *BWT) SetPrimaryIndex(n int, primaryIndex uint) bool {
	if n < 0 || n >= len(this.primaryIndexes) {
		return false
	}

	this.primaryIndexes[n] = primaryIndex
	return true
}

// MaxBWTBlockSize returns the largest block size the codec will transform.
func MaxBWTBlockSize() int {
	return maxBWTBlockSize
}

// GetBWTChunks returns the number of primary-index chunks a block of the
// given size is split into: one below 8 MB, growing by 8 MB increments up
// to maxBWTChunks.
func GetBWTChunks(size int) int {
	if size < 1<<23 { // 8 MB
		return 1
	}

	res := (size + (1 << 22)) >> 23

	if res > maxBWTChunks {
		return maxBWTChunks
	}

	return res
}

// Forward computes the BWT of src into dst, filling in one primary index
// per chunk (see GetBWTChunks). src and dst must not alias.
func (this *BWT) Forward(src, dst []byte) (_ uint, _ uint, err error) {
	defer errs.Recover(&err)

	if len(src) == 0 {
		return 0, 0, nil
	}

	count := len(src)

	if count > MaxBWTBlockSize() {
		return 0, 0, fmt.Errorf("divsufsort: max BWT block size is %v, got %v", MaxBWTBlockSize(), count)
	}

	if count > len(dst) {
		return 0, 0, fmt.Errorf("divsufsort: block size is %v, output buffer length is %v", count, len(dst))
	}

	if &src[0] == &dst[0] {
		return 0, 0, errBuffersOverlap
	}

	if count < 2 {
		if count == 1 {
			dst[0] = src[0]
		}

		return uint(count), uint(count), nil
	}

	if this.saAlgo == nil {
		this.saAlgo = NewDivSufSort()

		if this.listener != nil {
			this.saAlgo.AddListener(this.listener)
		}
	}

	// Lazy dynamic memory allocation
	if len(this.buffer3) < count {
		this.buffer3 = make([]int32, count)
	}

	sa := this.buffer3

	if err := this.saAlgo.ComputeSuffixArray(src, sa[0:count], 0, int32(count)); err != nil {
		return 0, 0, err
	}

	n := 0
	chunks := GetBWTChunks(count)

	if chunks == 1 {
		for n < count {
			if sa[n] == 0 {
				this.SetPrimaryIndex(0, uint(n))
				break
			}

			dst[n] = src[sa[n]-1]
			n++
		}

		dst[n] = src[count-1]
		n++

		for n < count {
			dst[n] = src[sa[n]-1]
			n++
		}
	} else {
		step := int32(count / chunks)

		if int(step)*chunks != count {
			step++
		}

		for n < count {
			if sa[n]%step == 0 {
				this.SetPrimaryIndex(int(sa[n]/step), uint(n))

				if sa[n] == 0 {
					break
				}
			}

			dst[n] = src[sa[n]-1]
			n++
		}

		dst[n] = src[count-1]
		n++

		for n < count {
			if sa[n]%step == 0 {
				this.SetPrimaryIndex(int(sa[n]/step), uint(n))
			}

			dst[n] = src[sa[n]-1]
			n++
		}
	}

	return uint(count), uint(count), nil
}

// Inverse rebuilds the original bytes of a BWT-transformed block. The
// primary index(es) set by a prior Forward call (or SetPrimaryIndex) must
// still be current. src and dst must not alias.
func (this *BWT) Inverse(src, dst []byte) (_ uint, _ uint, err error) {
	defer errs.Recover(&err)

	if len(src) == 0 {
		return 0, 0, nil
	}

	count := len(src)

	if count > MaxBWTBlockSize() {
		return 0, 0, fmt.Errorf("divsufsort: max BWT block size is %v, got %v", MaxBWTBlockSize(), count)
	}

	if count > len(dst) {
		return 0, 0, fmt.Errorf("divsufsort: block size is %v, output buffer length is %v", count, len(dst))
	}

	if &src[0] == &dst[0] {
		return 0, 0, errBuffersOverlap
	}

	if count < 2 {
		if count == 1 {
			dst[0] = src[0]
		}

		return uint(count), uint(count), nil
	}

	// Find the fastest way to implement inverse based on block size.
	if count < 1<<24 {
		return this.inverseRegularBlock(src, dst, count)
	}

	if 5*uint64(count) >= uint64(1)<<31 {
		return this.inverseHugeBlock(src, dst, count)
	}

	return this.inverseBigBlock(src, dst, count)
}

// When count < 1<<24
func (this *BWT) inverseRegularBlock(src, dst []byte, count int) (uint, uint, error) {
	if len(this.buffer1) < count {
		this.buffer1 = make([]uint32, count)
	}

	data := this.buffer1
	buckets := [256]uint32{}
	chunks := GetBWTChunks(count)

	// Build array of packed index + value (assumes block size < 2^24).
	// Start with the primary index position.
	pIdx := int(this.PrimaryIndex(0))
	val0 := uint32(src[pIdx])
	data[pIdx] = val0
	buckets[val0]++

	for i := 0; i < pIdx; i++ {
		val := uint32(src[i])
		data[i] = (buckets[val] << 8) | val
		buckets[val]++
	}

	for i := pIdx + 1; i < count; i++ {
		val := uint32(src[i])
		data[i] = (buckets[val] << 8) | val
		buckets[val]++
	}

	sum := uint32(0)

	for i, b := range &buckets {
		buckets[i] = sum
		sum += b
	}

	idx := count - 1

	if chunks == 1 || this.jobs == 1 {
		ptr := data[pIdx]
		dst[idx] = byte(ptr)
		idx--

		for idx >= 0 {
			ptr = data[(ptr>>8)+buckets[ptr&0xFF]]
			dst[idx] = byte(ptr)
			idx--
		}
	} else {
		step := count / chunks

		if step*chunks != count {
			step++
		}

		nbTasks := int(this.jobs)

		if nbTasks > chunks {
			nbTasks = chunks
		}

		jobsPerTask := ComputeJobsPerTask(make([]uint, nbTasks), uint(chunks), uint(nbTasks))
		c := chunks
		var wg sync.WaitGroup

		for j := 0; j < nbTasks; j++ {
			wg.Add(1)
			nc := c - int(jobsPerTask[j])
			end := nc * step

			go func(dst []byte, buckets []uint32, pIdx, idx, step, startChunk, endChunk int) {
				this.inverseChunkRegularBlock(dst, buckets, pIdx, idx, step, startChunk, endChunk)
				wg.Done()
			}(dst, buckets[:], pIdx, idx, step, c-1, nc-1)

			c = nc
			pIdx = int(this.PrimaryIndex(c))
			idx = end - 1
		}

		wg.Wait()
	}

	return uint(count), uint(count), nil
}

// When count >= 1<<24 and 5*count < 1<<31
func (this *BWT) inverseBigBlock(src, dst []byte, count int) (uint, uint, error) {
	if len(this.buffer2) < 5*count {
		this.buffer2 = make([]byte, 5*count)
	}

	data := this.buffer2
	buckets := [256]uint32{}
	chunks := GetBWTChunks(count)

	pIdx := int(this.PrimaryIndex(0))
	val0 := src[pIdx]
	binary.LittleEndian.PutUint32(data[pIdx*5:], buckets[val0])
	data[pIdx*5+4] = val0
	buckets[val0]++

	for i := 0; i < pIdx; i++ {
		val := src[i]
		binary.LittleEndian.PutUint32(data[i*5:], buckets[val])
		data[i*5+4] = val
		buckets[val]++
	}

	for i := pIdx + 1; i < count; i++ {
		val := src[i]
		binary.LittleEndian.PutUint32(data[i*5:], buckets[val])
		data[i*5+4] = val
		buckets[val]++
	}

	sum := uint32(0)

	for i, b := range &buckets {
		buckets[i] = sum
		sum += b
	}

	idx := count - 1

	if chunks == 1 || this.jobs == 1 {
		val := data[pIdx*5+4]
		dst[idx] = val
		idx--
		n := binary.LittleEndian.Uint32(data[pIdx*5:]) + buckets[val]

		for idx >= 0 {
			val = data[n*5+4]
			dst[idx] = val
			idx--
			n = binary.LittleEndian.Uint32(data[n*5:]) + buckets[val]
		}
	} else {
		step := count / chunks

		if step*chunks != count {
			step++
		}

		nbTasks := int(this.jobs)

		if nbTasks > chunks {
			nbTasks = chunks
		}

		jobsPerTask := ComputeJobsPerTask(make([]uint, nbTasks), uint(chunks), uint(nbTasks))
		c := chunks
		var wg sync.WaitGroup

		for j := 0; j < nbTasks; j++ {
			wg.Add(1)
			nc := c - int(jobsPerTask[j])
			end := nc * step

			go func(dst []byte, buckets []uint32, pIdx, idx, step, startChunk, endChunk int) {
				this.inverseChunkBigBlock(dst, buckets, pIdx, idx, step, startChunk, endChunk)
				wg.Done()
			}(dst, buckets[:], pIdx, idx, step, c-1, nc-1)

			c = nc
			pIdx = int(this.PrimaryIndex(c))
			idx = end - 1
		}

		wg.Wait()
	}

	return uint(count), uint(count), nil
}

// When 5*count >= 1<<31
func (this *BWT) inverseHugeBlock(src, dst []byte, count int) (uint, uint, error) {
	if len(this.buffer1) < count {
		this.buffer1 = make([]uint32, count)
	}

	if len(this.buffer2) < count {
		this.buffer2 = make([]byte, count)
	}

	data1 := this.buffer1
	data2 := this.buffer2
	buckets := [256]uint32{}
	chunks := GetBWTChunks(count)

	pIdx := int(this.PrimaryIndex(0))
	val0 := src[pIdx]
	data1[pIdx] = buckets[val0]
	data2[pIdx] = val0
	buckets[val0]++

	for i := 0; i < pIdx; i++ {
		val := src[i]
		data1[i] = buckets[val]
		data2[i] = val
		buckets[val]++
	}

	for i := pIdx + 1; i < count; i++ {
		val := src[i]
		data1[i] = buckets[val]
		data2[i] = val
		buckets[val]++
	}

	sum := uint32(0)

	for i, b := range buckets {
		buckets[i] = sum
		sum += b
	}

	idx := count - 1

	if chunks == 1 || this.jobs == 1 {
		val := data2[pIdx]
		dst[idx] = val
		idx--
		n := data1[pIdx] + buckets[val]

		for idx >= 0 {
			val = data2[n]
			dst[idx] = val
			idx--
			n = data1[n] + buckets[val]
		}
	} else {
		step := count / chunks

		if step*chunks != count {
			step++
		}

		nbTasks := int(this.jobs)

		if nbTasks > chunks {
			nbTasks = chunks
		}

		jobsPerTask := ComputeJobsPerTask(make([]uint, nbTasks), uint(chunks), uint(nbTasks))
		c := chunks
		var wg sync.WaitGroup

		for j := 0; j < nbTasks; j++ {
			wg.Add(1)
			nc := c - int(jobsPerTask[j])
			end := nc * step

			go func(dst []byte, buckets []uint32, pIdx, idx, step, startChunk, endChunk int) {
				this.inverseChunkHugeBlock(dst, buckets, pIdx, idx, step, startChunk, endChunk)
				wg.Done()
			}(dst, buckets[:], pIdx, idx, step, c-1, nc-1)

			c = nc
			pIdx = int(this.PrimaryIndex(c))
			idx = end - 1
		}

		wg.Wait()
	}

	return uint(count), uint(count), nil
}

func (this *BWT) inverseChunkRegularBlock(dst []byte, buckets []uint32, pIdx, idx, step, startChunk, endChunk int) {
	data := this.buffer1

	for i := startChunk; i > endChunk; i-- {
		endIdx := i * step
		startIdx := idx
		ptr := data[pIdx]
		dst[idx] = byte(ptr)
		idx--

		for idx >= endIdx {
			ptr = data[(ptr>>8)+buckets[ptr&0xFF]]
			dst[idx] = byte(ptr)
			idx--
		}

		this.notifyChunkDone(i, int32(startIdx-idx))
		pIdx = int(this.PrimaryIndex(i))
	}
}

func (this *BWT) inverseChunkBigBlock(dst []byte, buckets []uint32, pIdx, idx, step, startChunk, endChunk int) {
	data := this.buffer2

	for i := startChunk; i > endChunk; i-- {
		endIdx := i * step
		startIdx := idx
		val := data[pIdx*5+4]
		dst[idx] = val
		idx--
		n := binary.LittleEndian.Uint32(data[pIdx*5:]) + buckets[val]

		for idx >= endIdx {
			val = data[n*5+4]
			dst[idx] = val
			idx--
			n = binary.LittleEndian.Uint32(data[n*5:]) + buckets[val]
		}

		this.notifyChunkDone(i, int32(startIdx-idx))
		pIdx = int(this.PrimaryIndex(i))
	}
}

func (this *BWT) inverseChunkHugeBlock(dst []byte, buckets []uint32, pIdx, idx, step, startChunk, endChunk int) {
	data1 := this.buffer1
	data2 := this.buffer2

	for i := startChunk; i > endChunk; i-- {
		endIdx := i * step
		startIdx := idx
		val := data2[pIdx]
		dst[idx] = val
		idx--
		n := data1[pIdx] + buckets[val]

		for idx >= endIdx {
			val = data2[n]
			dst[idx] = val
			idx--
			n = data1[n] + buckets[val]
		}

		this.notifyChunkDone(i, int32(startIdx-idx))
		pIdx = int(this.PrimaryIndex(i))
	}
}

// ComputeJobsPerTask spreads jobs concurrent workers across tasks tasks as
// evenly as possible, returning the job count assigned to each task.
func ComputeJobsPerTask(jobsPerTask []uint, jobs, tasks uint) []uint {
	if tasks == 0 || jobs == 0 {
		return jobsPerTask
	}

	var q, r uint

	if jobs <= tasks {
		q = 1
		r = 0
	} else {
		q = jobs / tasks
		r = jobs - q*tasks
	}

	for i := range jobsPerTask {
		jobsPerTask[i] = q
	}

	n := uint(0)

	for r != 0 {
		jobsPerTask[n]++
		r--
		n++

		if n == tasks {
			n = 0
		}
	}

	return jobsPerTask
}
