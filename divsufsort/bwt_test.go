package divsufsort

import (
	"math/rand"
	"sort"
	"sync"
	"testing"
)

func roundTripBWT(t *testing.T, jobs uint, input []byte) []byte {
	t.Helper()
	bwt := NewBWTWithJobs(jobs)
	transformed := make([]byte, len(input))

	if _, _, err := bwt.Forward(input, transformed); err != nil {
		t.Fatalf("Forward failed: %v", err)
	}

	inverse := NewBWTWithJobs(jobs)

	for i := 0; i < len(bwt.primaryIndexes); i++ {
		inverse.SetPrimaryIndex(i, bwt.PrimaryIndex(i))
	}

	recovered := make([]byte, len(input))

	if _, _, err := inverse.Inverse(transformed, recovered); err != nil {
		t.Fatalf("Inverse failed: %v", err)
	}

	return recovered
}

func TestBWTRoundTripSmallStrings(t *testing.T) {
	inputs := []string{
		"mississippi",
		"3.14159265358979323846264338327950288419716939937510",
		"SIX.MIXED.PIXIES.SIFT.SIXTY.PIXIE.DUST.BOXES",
		"banana",
		"a",
		"aa",
	}

	for _, s := range inputs {
		got := roundTripBWT(t, 1, []byte(s))

		if string(got) != s {
			t.Errorf("round trip of %q produced %q", s, got)
		}
	}
}

func TestBWTRoundTripConcurrentChunks(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	input := make([]byte, 12*1024*1024) // GetBWTChunks yields 2 chunks from 12 MB

	for i := range input {
		input[i] = byte(rnd.Intn(256))
	}

	got := roundTripBWT(t, 2, input)

	for i := range input {
		if got[i] != input[i] {
			t.Fatalf("round trip mismatch at byte %d: got %d want %d", i, got[i], input[i])
		}
	}
}

func TestBWTForwardRejectsAliasedBuffers(t *testing.T) {
	bwt := NewBWT()
	buf := make([]byte, 4)

	if _, _, err := bwt.Forward(buf, buf); err == nil {
		t.Error("expected an error when src and dst alias")
	}
}

func TestBWTForwardRejectsUndersizedOutput(t *testing.T) {
	bwt := NewBWT()
	src := []byte("mississippi")
	dst := make([]byte, len(src)-1)

	if _, _, err := bwt.Forward(src, dst); err == nil {
		t.Error("expected an error when dst is smaller than src")
	}
}

func TestBWTForwardRejectsEmptyOutput(t *testing.T) {
	bwt := NewBWT()
	src := []byte("mississippi")

	if _, _, err := bwt.Forward(src, nil); err == nil {
		t.Error("expected an error when dst is empty")
	}
}

func TestBWTInverseRejectsEmptyOutput(t *testing.T) {
	bwt := NewBWT()
	src := []byte("mississippi")

	if _, _, err := bwt.Inverse(src, nil); err == nil {
		t.Error("expected an error when dst is empty")
	}
}

// concurrentIDCollector records the ids of EvtChunkInverseEnd events seen
// from any number of concurrent goroutines.
type concurrentIDCollector struct {
	mu  sync.Mutex
	ids []int
}

func (c *concurrentIDCollector) ProcessEvent(evt *Event) {
	if evt.Type() != EvtChunkInverseEnd {
		return
	}

	c.mu.Lock()
	c.ids = append(c.ids, evt.Id())
	c.mu.Unlock()
}

func TestBWTInverseConcurrentChunksNotifyListener(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	input := make([]byte, 12*1024*1024)

	for i := range input {
		input[i] = byte(rnd.Intn(256))
	}

	bwt := NewBWTWithJobs(2)
	transformed := make([]byte, len(input))

	if _, _, err := bwt.Forward(input, transformed); err != nil {
		t.Fatalf("Forward failed: %v", err)
	}

	inverse := NewBWTWithJobs(2)

	for i := 0; i < len(bwt.primaryIndexes); i++ {
		inverse.SetPrimaryIndex(i, bwt.PrimaryIndex(i))
	}

	collector := &concurrentIDCollector{}
	inverse.AddListener(collector)
	recovered := make([]byte, len(input))

	if _, _, err := inverse.Inverse(transformed, recovered); err != nil {
		t.Fatalf("Inverse failed: %v", err)
	}

	chunks := GetBWTChunks(len(input))

	if chunks < 2 {
		t.Fatalf("test setup expected multiple chunks, got %d", chunks)
	}

	if len(collector.ids) != chunks {
		t.Fatalf("expected %d chunk-completion events, got %d: %v", chunks, len(collector.ids), collector.ids)
	}

	got := append([]int(nil), collector.ids...)
	sort.Ints(got)

	for i, id := range got {
		if id != i {
			t.Fatalf("chunk ids are not 0..%d after sorting, got %v", chunks-1, got)
		}
	}
}
