package divsufsort

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func computeSA(t *testing.T, input []byte) []int32 {
	t.Helper()
	sa := make([]int32, len(input))
	engine := NewDivSufSort()

	if err := engine.ComputeSuffixArray(input, sa, 0, int32(len(input))); err != nil {
		t.Fatalf("ComputeSuffixArray(%q) failed: %v", input, err)
	}

	return sa
}

func TestComputeSuffixArrayKnownStrings(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []int32
	}{
		{"banana", "banana", []int32{5, 3, 1, 0, 4, 2}},
		{"mississippi", "mississippi", []int32{10, 7, 4, 1, 0, 9, 8, 6, 3, 5, 2}},
		{"abracadabra", "abracadabra", []int32{10, 7, 0, 3, 5, 8, 1, 4, 6, 9, 2}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := computeSA(t, []byte(c.input))

			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("suffix array mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeSuffixArrayAllZeroBytes(t *testing.T) {
	input := make([]byte, 256)
	got := computeSA(t, input)
	want := make([]int32, 256)

	for i := range want {
		want[i] = int32(255 - i)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("suffix array mismatch (-want +got):\n%s", diff)
	}
}

// isSortedSuffixArray verifies the defining property of a suffix array
// directly: sa must be a permutation of 0..n-1 and every adjacent pair of
// suffixes it names must compare non-decreasing.
func isSortedSuffixArray(t *testing.T, input []byte, sa []int32) bool {
	t.Helper()
	n := len(input)

	if len(sa) != n {
		return false
	}

	seen := make([]bool, n)

	for _, s := range sa {
		if s < 0 || int(s) >= n || seen[s] {
			return false
		}

		seen[s] = true
	}

	for i := 1; i < n; i++ {
		a := input[sa[i-1]:]
		b := input[sa[i]:]

		if string(a) > string(b) {
			return false
		}
	}

	return true
}

func TestComputeSuffixArrayIdentityOverBinaryAlphabet(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	for n := 2; n <= 64; n++ {
		input := make([]byte, n)

		for i := range input {
			input[i] = byte(rnd.Intn(2))
		}

		sa := computeSA(t, input)

		if !isSortedSuffixArray(t, input, sa) {
			t.Fatalf("length %d: sa is not a valid suffix array for %v", n, input)
		}
	}
}

func TestComputeSuffixArrayRandom64KiB(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	input := make([]byte, 64*1024)
	rnd.Read(input)
	sa := computeSA(t, input)

	if !isSortedSuffixArray(t, input, sa) {
		t.Fatal("sa is not a valid suffix array for the random 64KiB input")
	}
}

func TestComputeSuffixArrayRejectsBadArguments(t *testing.T) {
	engine := NewDivSufSort()

	if err := engine.ComputeSuffixArray([]byte("abc"), make([]int32, 3), 0, -1); err == nil {
		t.Error("expected an error for a negative length")
	}

	if err := engine.ComputeSuffixArray([]byte("abc"), make([]int32, 3), 0, 0); err == nil {
		t.Error("expected an error for a zero length")
	}

	if err := engine.ComputeSuffixArray([]byte("abc"), make([]int32, 3), 1, 3); err == nil {
		t.Error("expected an error for a start/length window past the input")
	}

	if err := engine.ComputeSuffixArray([]byte("abc"), make([]int32, 2), 0, 3); err == nil {
		t.Error("expected an error for a sa slice shorter than length")
	}
}

func TestComputeBWTKnownString(t *testing.T) {
	engine := NewDivSufSort()
	input := []byte("banana")
	dst := make([]byte, len(input))
	scratch := make([]int32, len(input))
	indexes := make([]uint, 1)

	pIdx, err := engine.ComputeBWT(input, dst, scratch, 0, int32(len(input)), indexes, 1)

	if err != nil {
		t.Fatalf("ComputeBWT failed: %v", err)
	}

	if want := "nnbaaa"; string(dst) != want {
		t.Errorf("BWT(%q) = %q, want %q", input, dst, want)
	}

	if pIdx != 3 {
		t.Errorf("primary index = %d, want 3", pIdx)
	}
}

func TestComputeBWTRejectsBadIndexCount(t *testing.T) {
	engine := NewDivSufSort()
	input := []byte("banana")
	dst := make([]byte, len(input))
	scratch := make([]int32, len(input))

	if _, err := engine.ComputeBWT(input, dst, scratch, 0, int32(len(input)), make([]uint, 1), 0); err == nil {
		t.Error("expected an error for idxCount < 1")
	}

	if _, err := engine.ComputeBWT(input, dst, scratch, 0, int32(len(input)), make([]uint, 1), 2); err == nil {
		t.Error("expected an error for an indexes slice shorter than idxCount")
	}
}

func TestEventListenerSeesEveryPhase(t *testing.T) {
	engine := NewDivSufSort()
	var seen []int

	engine.AddListener(listenerFunc(func(evt *Event) {
		seen = append(seen, evt.Type())
	}))

	sa := make([]int32, len("mississippi"))

	if err := engine.ComputeSuffixArray([]byte("mississippi"), sa, 0, int32(len(sa))); err != nil {
		t.Fatalf("ComputeSuffixArray failed: %v", err)
	}

	want := []int{EvtBucketStart, EvtBucketEnd, EvtSubstringSortEnd, EvtTandemSortEnd, EvtInduceStart, EvtInduceEnd}

	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("event sequence mismatch (-want +got):\n%s", diff)
	}
}

type listenerFunc func(evt *Event)

func (f listenerFunc) ProcessEvent(evt *Event) {
	f(evt)
}
