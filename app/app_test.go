package app

import (
	"errors"
	"strings"
	"testing"

	"tiestrike/internal/haltest"
)

func countLines(lines []string, substr string) int {
	n := 0
	for _, l := range lines {
		if strings.Contains(l, substr) {
			n++
		}
	}
	return n
}

func TestStepRunsFrames(t *testing.T) {
	h := haltest.NewHAL(128, 160, 7)
	step := NewWithConfig(h, Config{Seed: 0x1234})

	for i := 0; i < 5; i++ {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if len(h.Surf.Fills) != 5 {
		t.Fatalf("FillScreen called %d times over 5 frames", len(h.Surf.Fills))
	}
	if countLines(h.Log.Lines, "seed=0x00001234") != 1 {
		t.Fatalf("seed not logged: %q", h.Log.Lines)
	}
}

func TestZeroSeedUsesEntropy(t *testing.T) {
	h := haltest.NewHAL(128, 160, 0xCAFE)
	New(h)
	if countLines(h.Log.Lines, "seed=0x0000cafe") != 1 {
		t.Fatalf("entropy seed not logged: %q", h.Log.Lines)
	}
}

func TestSameSeedSameFrames(t *testing.T) {
	run := func() []haltest.Line {
		h := haltest.NewHAL(128, 160, 1)
		step := NewWithConfig(h, Config{Seed: 99})
		for i := 0; i < 10; i++ {
			if err := step(); err != nil {
				t.Fatalf("step: %v", err)
			}
		}
		return h.Surf.Lines
	}
	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("line counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("line %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestRecoverFrameReportsPanic(t *testing.T) {
	h := haltest.NewHAL(128, 160, 1)

	var err error
	func() {
		defer recoverFrame(h, &err)
		panic(errors.New("boom"))
	}()

	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("err = %v, want panic error", err)
	}
	if countLines(h.Log.Lines, "panic=boom") != 1 {
		t.Fatalf("panic not logged: %q", h.Log.Lines)
	}
	if len(h.Surf.Fills) != 1 || h.Surf.Fills[0] != 0xFFFF {
		t.Fatalf("fills = %v, want one white fill", h.Surf.Fills)
	}
	if len(h.Surf.Pixels) == 0 {
		t.Fatal("panic card drew no text")
	}
}

func TestRecoverFrameNoPanic(t *testing.T) {
	h := haltest.NewHAL(128, 160, 1)

	var err error
	func() {
		defer recoverFrame(h, &err)
	}()

	if err != nil || len(h.Log.Lines) != 0 || len(h.Surf.Fills) != 0 {
		t.Fatalf("quiet frame reported: err=%v log=%q", err, h.Log.Lines)
	}
}

func TestTakeRunes(t *testing.T) {
	tests := []struct {
		in, prefix, rest string
		n                int
	}{
		{in: "abcdef", n: 3, prefix: "abc", rest: "def"},
		{in: "ab", n: 3, prefix: "ab", rest: ""},
		{in: "héllo", n: 2, prefix: "hé", rest: "llo"},
		{in: "x", n: 0, prefix: "", rest: "x"},
	}
	for _, tt := range tests {
		p, r := takeRunes(tt.in, tt.n)
		if p != tt.prefix || r != tt.rest {
			t.Fatalf("takeRunes(%q, %d) = %q, %q", tt.in, tt.n, p, r)
		}
	}
}
