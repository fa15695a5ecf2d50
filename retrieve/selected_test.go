package retrieve

import (
	"sync"
	"testing"
)

func TestReserve(t *testing.T) {
	s := NewSelectedSet()
	if !s.Reserve(42) {
		t.Fatal("first reservation of 42 refused")
	}
	if s.Reserve(42) {
		t.Fatal("second reservation of 42 accepted")
	}
	if !s.Reserve(43) {
		t.Fatal("reservation of a fresh id refused")
	}
	if s.Len() != 2 {
		t.Errorf("Len: got %d, want 2", s.Len())
	}
}

func TestReserveConcurrent(t *testing.T) {
	s := NewSelectedSet()

	const goroutines = 64
	var wg sync.WaitGroup
	wins := make(chan int, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.Reserve(789) {
				wins <- 1
			}
		}()
	}
	wg.Wait()
	close(wins)

	if got := len(wins); got != 1 {
		t.Errorf("id 789 reserved %d times, want exactly once", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len: got %d, want 1", s.Len())
	}
}
