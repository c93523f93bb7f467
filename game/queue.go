package game

import (
	"fmt"
	"sync"
)

type lane struct {
	jobs    chan func()
	pending int
}

// Queue runs jobs one at a time per user in submission order. Different users
// run in parallel. A user's worker exits once its lane drains.
type Queue struct {
	mu    sync.Mutex
	lanes map[uint]*lane
	depth int
}

// NewQueue creates a queue whose lanes buffer depth jobs before Do blocks.
func NewQueue(depth int) *Queue {
	if depth <= 0 {
		depth = 16
	}
	return &Queue{lanes: map[uint]*lane{}, depth: depth}
}

// Do enqueues fn on the user's lane and waits for it to finish.
// A panic in fn is returned as an error.
func (q *Queue) Do(userID uint, fn func() error) error {
	done := make(chan error, 1)
	q.submit(userID, func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("queued job panicked: %v", r)
			}
		}()
		done <- fn()
	})
	return <-done
}

func (q *Queue) submit(userID uint, job func()) {
	q.mu.Lock()
	l, ok := q.lanes[userID]
	if !ok {
		l = &lane{jobs: make(chan func(), q.depth)}
		q.lanes[userID] = l
		go q.run(userID, l)
	}
	l.pending++
	q.mu.Unlock()

	l.jobs <- job
}

func (q *Queue) run(userID uint, l *lane) {
	for {
		job := <-l.jobs
		job()

		q.mu.Lock()
		l.pending--
		if l.pending == 0 {
			delete(q.lanes, userID)
			q.mu.Unlock()
			return
		}
		q.mu.Unlock()
	}
}

// Lanes returns the number of users with queued or running jobs.
func (q *Queue) Lanes() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.lanes)
}
