package renderer

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/example/gotracer/pkg/scene"
)

// RowTask renders one image row for one sub-pixel pass: pixels within a
// single sub-pixel pass are independent and parallelizable over a
// worker pool. Row is the unit of work rather than a square tile, since
// the accumulator law is defined per sub-pixel offset over the whole
// image, and rows give fine-grained, non-overlapping parallelism
// without extra bookkeeping.
type RowTask struct {
	Y          int     // image row
	OffsetX    float32 // sub-pixel offset xp, added to x before dividing by W in the worker
	OffsetY    float32 // sub-pixel offset yp
	Rand       *rand.Rand
	PixelStats [][]PixelStats // shared accumulator, one row written per task
}

// RowResult reports a completed row so the driver can publish it to
// the framebuffer sink.
type RowResult struct {
	Y     int
	Error error
}

// WorkerPool runs RowTasks across a fixed number of goroutines, each
// holding its own Scene-bound renderer and never sharing a *rand.Rand
// with another worker.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a pool of numWorkers goroutines (0 = CPU count)
// that each render primary rays against scene at width x height.
func NewWorkerPool(s *scene.Scene, width, height, maxDepth, n, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, height),
		resultQueue: make(chan RowResult, height),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		w := &rowWorker{scene: s, width: width, maxDepth: maxDepth, n: n}
		wp.wg.Add(1)
		go w.run(wp.taskQueue, wp.resultQueue, &wp.wg)
	}

	return wp
}

// Submit enqueues a row for rendering.
func (wp *WorkerPool) Submit(task RowTask) {
	wp.taskQueue <- task
}

// Result retrieves one completed row's result.
func (wp *WorkerPool) Result() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// Close shuts the pool down once all submitted rows for this render
// have been consumed. Safe to call once, after the last Submit.
func (wp *WorkerPool) Close() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// NumWorkers reports the pool's goroutine count.
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// rowWorker renders full rows for whatever tasks arrive on its shared
// queue. scene is read-only during rendering; width/maxDepth/n are
// render parameters fixed for the whole run.
type rowWorker struct {
	scene    *scene.Scene
	width    int
	maxDepth int
	n        int
}

func (w *rowWorker) run(tasks <-chan RowTask, results chan<- RowResult, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range tasks {
		row := task.PixelStats[task.Y]
		for x := 0; x < w.width; x++ {
			cx := (float32(x) + task.OffsetX) / float32(w.width)
			cy := (float32(task.Y) + task.OffsetY) / float32(len(task.PixelStats))

			r := w.scene.Camera.Ray(cx, cy)
			c := w.scene.SendRay(r, 0, w.maxDepth, w.n, task.Rand)
			row[x].AddSample(c)
		}
		results <- RowResult{Y: task.Y}
	}
}
