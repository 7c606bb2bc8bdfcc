package renderer

import (
	"runtime"
	"sync"
)

// RenderSceneParallel renders the scene with rows distributed across worker
// goroutines. Surfaces and lights are read-only during a render and each
// row maps to a disjoint set of sink pixels, so workers never contend.
// numWorkers <= 0 uses one worker per CPU.
func (rt *Raytracer) RenderSceneParallel(numWorkers int) {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	width, height := rt.sink.Width(), rt.sink.Height()
	rt.camera.updateViewport(width, height)

	rows := make(chan int, height)
	for y := 0; y < height; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for y := range rows {
				for x := 0; x < width; x++ {
					ray := rt.camera.GetRay(x, y)
					rt.sink.SetPixel(x, y, rt.TraceRay(ray, rt.config.RecursionDepth))
				}
			}
		}()
	}
	wg.Wait()
	rt.logf("rendered %dx%d pixels with %d workers", width, height, numWorkers)
}
