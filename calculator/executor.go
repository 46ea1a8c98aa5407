package calculator

import "sync/atomic"

// 基于行的任务分配，每个任务只写输出平面的 [start, end) 行，互不重叠
type executorBaseOnRows struct {
	workers int
}

type task struct {
	start int
	end   int
}

func newExecutorBaseOnRows(workers int) *executorBaseOnRows {
	if workers < 1 {
		workers = 1
	}
	return &executorBaseOnRows{workers: workers}
}

// dispatchTask splits [first, last) into at most two tasks per worker, runs
// them and blocks until every row is done.
func (e *executorBaseOnRows) dispatchTask(first, last int, fn func(row int)) {
	total := last - first
	if total <= 0 {
		return
	}
	if e.workers == 1 || total == 1 {
		for i := first; i < last; i++ {
			fn(i)
		}
		return
	}

	tasks := splitTasks(first, last, e.workers)
	dispatchChan := make(chan task, len(tasks))
	for _, t := range tasks {
		dispatchChan <- t
	}
	close(dispatchChan)

	workers := e.workers
	if workers > len(tasks) {
		workers = len(tasks)
	}
	doneSoFar := make(chan struct{}, workers)
	for w := 0; w < workers; w++ {
		go func() {
			for t := range dispatchChan {
				for i := t.start; i < t.end; i++ {
					fn(i)
				}
			}
			doneSoFar <- struct{}{}
		}()
	}
	for w := 0; w < workers; w++ {
		<-doneSoFar
	}
}

// 每个 worker 两份任务，余数均摊到前面的任务中
func splitTasks(first, last, workers int) []task {
	total := last - first
	n := workers * 2
	if n > total {
		n = total
	}
	taskLen, remainder := total/n, total%n
	tasks := make([]task, 0, n)
	start := first
	for i := 0; i < n; i++ {
		end := start + taskLen
		if i < remainder {
			end++
		}
		tasks = append(tasks, task{start: start, end: end})
		start = end
	}
	return tasks
}

var defaultExecutor atomic.Value

func init() {
	defaultExecutor.Store(newExecutorBaseOnRows(1))
}

// SetWorkers sets how many goroutines the field kernels use. Fields already
// being computed keep the previous setting.
func SetWorkers(workers int) {
	defaultExecutor.Store(newExecutorBaseOnRows(workers))
}

func Workers() int {
	return defaultExecutor.Load().(*executorBaseOnRows).workers
}

func forEachRow(dim int, fn func(row int)) {
	defaultExecutor.Load().(*executorBaseOnRows).dispatchTask(0, dim, fn)
}
