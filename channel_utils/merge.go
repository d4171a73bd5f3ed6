package channel_utils

import (
	"sync"

	"github.com/Slime-Stack/Sluggers/application/ports/outbound"
)

// MergeChannels fans the given channels into one, draining each on the
// worker pool. The merged channel closes once every input closes.
func MergeChannels[T any](workerPool outbound.TaskDispatcher, channels ...<-chan T) (<-chan T, error) {
	var wg sync.WaitGroup
	merged := make(chan T)

	drain := func(ch <-chan T) {
		defer wg.Done()
		for val := range ch {
			merged <- val
		}
	}

	wg.Add(len(channels))
	for _, ch := range channels {
		if err := workerPool.Submit(func() { drain(ch) }); err != nil {
			return nil, err
		}
	}

	err := workerPool.Submit(func() {
		wg.Wait()
		close(merged)
	})
	if err != nil {
		return nil, err
	}

	return merged, nil
}
