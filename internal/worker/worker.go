package worker

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Task represents a unit of background work, such as the initial directory fetch.
type Task func()

// Pool runs submitted tasks on a fixed set of goroutines.
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.loop()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

func (p *pool) loop() {
	defer p.wg.Done()
	for job := range p.jobs {
		if job != nil {
			run(job)
		}
	}
}

// run keeps a panicking task from taking the worker down with it.
func run(job Task) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("worker task panicked")
		}
	}()
	job()
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Stop waits for queued tasks to finish.
func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
