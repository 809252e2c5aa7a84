package compute

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// cpuStepper advances the grid on the host, splitting rows into bands and
// fanning the bands out across one goroutine per logical CPU.
type cpuStepper struct {
	workers int
}

func newCPUStepper() *cpuStepper {
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	logger().Info("compute backend ready", "backend", "cpu", "workers", workers)
	return &cpuStepper{workers: workers}
}

func (s *cpuStepper) Name() string { return "cpu" }

func (s *cpuStepper) Step(cur, next []uint8, w, h int) error {
	var eg errgroup.Group
	band := (h + s.workers - 1) / s.workers
	for i := 0; i < s.workers; i++ {
		y0 := i * band
		if y0 >= h {
			break
		}
		y1 := min(y0+band, h)
		eg.Go(func() error {
			stepRows(cur, next, w, h, y0, y1)
			return nil
		})
	}
	return eg.Wait()
}

func (s *cpuStepper) Close() error { return nil }

// stepRows applies the transition rule to rows [y0, y1). Each worker owns
// a disjoint row range of next, so the bands never overlap.
func stepRows(cur, next []uint8, w, h, y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbors += int(cur[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := cur[idx] == 1
			next[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				next[idx] = 1
			}
		}
	}
}
