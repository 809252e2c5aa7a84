package compute

import (
	"math/rand/v2"
	"testing"
)

func TestCPUStepperBlinker(t *testing.T) {
	const w, h = 5, 5
	cur := make([]uint8, w*h)
	next := make([]uint8, w*h)
	cur[1*w+2] = 1
	cur[2*w+2] = 1
	cur[3*w+2] = 1

	s := newCPUStepper()
	if err := s.Step(cur, next, w, h); err != nil {
		t.Fatal(err)
	}

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			alive := next[y*w+x] == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestCPUStepperRuleTable(t *testing.T) {
	// Build a 7x7 grid where the center cell has exactly n alive
	// neighbors, for every n, and check the transition of the center.
	offsets := [8][2]int{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
	const w, h = 7, 7
	const cx, cy = 3, 3

	for _, centerAlive := range []uint8{0, 1} {
		for n := 0; n <= 8; n++ {
			cur := make([]uint8, w*h)
			next := make([]uint8, w*h)
			cur[cy*w+cx] = centerAlive
			for i := 0; i < n; i++ {
				cur[(cy+offsets[i][1])*w+cx+offsets[i][0]] = 1
			}

			s := newCPUStepper()
			if err := s.Step(cur, next, w, h); err != nil {
				t.Fatal(err)
			}

			want := uint8(0)
			if (centerAlive == 1 && (n == 2 || n == 3)) || (centerAlive == 0 && n == 3) {
				want = 1
			}
			if got := next[cy*w+cx]; got != want {
				t.Errorf("alive=%d neighbors=%d: next=%d, expected %d", centerAlive, n, got, want)
			}
		}
	}
}

func TestCPUStepperToroidalWrap(t *testing.T) {
	// A corner cell must count the diagonally opposite corner as adjacent:
	// with (w-1,h-1), (0,h-1) and (w-1,0) alive, the dead cell at (0,0)
	// has exactly three neighbors and is born.
	const w, h = 6, 4
	cur := make([]uint8, w*h)
	next := make([]uint8, w*h)
	cur[(h-1)*w+(w-1)] = 1
	cur[(h-1)*w+0] = 1
	cur[0*w+(w-1)] = 1

	s := newCPUStepper()
	if err := s.Step(cur, next, w, h); err != nil {
		t.Fatal(err)
	}
	if next[0] != 1 {
		t.Fatalf("cell (0,0) not born from wrapped corner neighbors")
	}
}

func TestCPUStepperMatchesSerial(t *testing.T) {
	const w, h = 67, 41
	rng := rand.New(rand.NewPCG(99, 0))
	cur := make([]uint8, w*h)
	for i := range cur {
		cur[i] = uint8(rng.IntN(2))
	}

	serial := make([]uint8, w*h)
	stepRows(cur, serial, w, h, 0, h)

	parallel := make([]uint8, w*h)
	s := &cpuStepper{workers: 7}
	if err := s.Step(cur, parallel, w, h); err != nil {
		t.Fatal(err)
	}

	for i := range serial {
		if serial[i] != parallel[i] {
			t.Fatalf("parallel result diverges from serial at index %d", i)
		}
	}
}

func TestCPUStepperMoreWorkersThanRows(t *testing.T) {
	const w, h = 4, 2
	cur := make([]uint8, w*h)
	next := make([]uint8, w*h)
	cur[0] = 1
	cur[1] = 1
	cur[w] = 1

	s := &cpuStepper{workers: 16}
	if err := s.Step(cur, next, w, h); err != nil {
		t.Fatal(err)
	}

	serial := make([]uint8, w*h)
	stepRows(cur, serial, w, h, 0, h)
	for i := range serial {
		if serial[i] != next[i] {
			t.Fatalf("oversubscribed result diverges at index %d", i)
		}
	}
}
