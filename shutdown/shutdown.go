// Package shutdown cancels in-flight renders on interrupt and runs cleanup
// hooks in priority order.
package shutdown

import (
	"container/heap"
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/flanksource/commons/logger"
)

const (
	PriorityRenders = 0
	PriorityDefault = 100
	PriorityOutputs = 200
)

type Hook struct {
	label    string
	priority int
	fn       func()
	index    int
}

type hookHeap []*Hook

func (h hookHeap) Len() int           { return len(h) }
func (h hookHeap) Less(i, j int) bool { return h[i].priority < h[j].priority }
func (h hookHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *hookHeap) Push(x any) {
	item := x.(*Hook)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *hookHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

var (
	hooks    hookHeap
	hooksMux sync.Mutex
)

// AddHook registers a hook with the default priority.
func AddHook(label string, fn func()) {
	AddHookWithPriority(label, PriorityDefault, fn)
}

// AddHookWithPriority registers a hook. Lower priorities run first.
func AddHookWithPriority(label string, priority int, fn func()) {
	hooksMux.Lock()
	defer hooksMux.Unlock()
	heap.Push(&hooks, &Hook{label: label, priority: priority, fn: fn})
}

// Shutdown runs and removes every registered hook. A panicking hook is
// logged and does not stop the others.
func Shutdown() {
	hooksMux.Lock()
	defer hooksMux.Unlock()

	if len(hooks) == 0 {
		return
	}
	logger.Debugf("running %d shutdown hooks", len(hooks))
	for hooks.Len() > 0 {
		hook := heap.Pop(&hooks).(*Hook)
		logger.Debugf("shutdown hook %s (priority=%d)", hook.label, hook.priority)
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Errorf("panic in shutdown hook %s: %v", hook.label, r)
				}
			}()
			hook.fn()
		}()
	}
}

// Notify returns a context that is canceled on the first SIGINT or SIGTERM,
// after which the hooks run. A second signal exits immediately. stop releases
// the signal handler.
func Notify(parent context.Context) (ctx context.Context, stop func()) {
	ctx, cancel := context.WithCancel(parent)
	sigs := make(chan os.Signal, 2)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		select {
		case sig := <-sigs:
			fmt.Fprintf(os.Stderr, "\nreceived %s, canceling renders (press Ctrl+C again to exit now)\n", sig)
			cancel()
			go func() {
				select {
				case <-sigs:
					fmt.Fprintln(os.Stderr, "forced exit")
					os.Exit(1)
				case <-done:
				}
			}()
			Shutdown()
		case <-done:
		}
	}()

	var once sync.Once
	return ctx, func() {
		once.Do(func() {
			signal.Stop(sigs)
			close(done)
			cancel()
		})
	}
}
