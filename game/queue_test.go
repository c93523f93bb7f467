package game

import (
	"sync"
	"testing"
	"time"
)

func TestQueueRunsInSubmissionOrder(t *testing.T) {
	q := NewQueue(4)
	var (
		mu    sync.Mutex
		order []int
	)
	// a slow head job makes later jobs pile up behind it
	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = q.Do(1, func() error {
			close(started)
			<-release
			mu.Lock()
			order = append(order, 0)
			mu.Unlock()
			return nil
		})
	}()
	<-started

	var wg sync.WaitGroup
	for i := 1; i <= 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = q.Do(1, func() error {
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				return nil
			})
		}(i)
		// give each submitter time to enqueue before the next one
		time.Sleep(10 * time.Millisecond)
	}
	close(release)
	wg.Wait()

	if len(order) != 6 {
		t.Fatalf("expected 6 jobs, got %v", order)
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("jobs ran out of order: %v", order)
		}
	}
}

func TestQueueOneJobAtATimePerUser(t *testing.T) {
	q := NewQueue(0)
	var (
		mu      sync.Mutex
		running int
		peak    int
	)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = q.Do(7, func() error {
				mu.Lock()
				running++
				if running > peak {
					peak = running
				}
				mu.Unlock()
				time.Sleep(time.Millisecond)
				mu.Lock()
				running--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()
	if peak != 1 {
		t.Fatalf("expected one job at a time, saw %d", peak)
	}
}

func TestQueueUsersRunInParallel(t *testing.T) {
	q := NewQueue(0)
	blockA := make(chan struct{})
	doneA := make(chan struct{})
	go func() {
		_ = q.Do(1, func() error {
			<-blockA
			return nil
		})
		close(doneA)
	}()

	finished := make(chan struct{})
	go func() {
		_ = q.Do(2, func() error { return nil })
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatalf("user 2 blocked behind user 1")
	}
	close(blockA)
	<-doneA
}

func TestQueueReleasesIdleLanes(t *testing.T) {
	q := NewQueue(0)
	for u := uint(1); u <= 3; u++ {
		if err := q.Do(u, func() error { return nil }); err != nil {
			t.Fatalf("Do: %v", err)
		}
	}
	deadline := time.Now().Add(2 * time.Second)
	for q.Lanes() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("lanes not released: %d", q.Lanes())
		}
		time.Sleep(time.Millisecond)
	}
}

func TestQueueRecoversPanics(t *testing.T) {
	q := NewQueue(0)
	err := q.Do(1, func() error { panic("boom") })
	if err == nil {
		t.Fatalf("expected error from panicking job")
	}
	if err := q.Do(1, func() error { return nil }); err != nil {
		t.Fatalf("lane unusable after panic: %v", err)
	}
}
