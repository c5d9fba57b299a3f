package commands

import (
	"sync"

	"github.com/battlesnakeio/solo/rules"
)

// frameHolder keeps the frames seen so far so the screen can be redrawn
// between ticks and finished games can be replayed.
type frameHolder struct {
	sync.RWMutex
	frames []rules.Snapshot
}

func (fh *frameHolder) append(frames ...rules.Snapshot) {
	fh.Lock()
	defer fh.Unlock()

	fh.frames = append(fh.frames, frames...)
}

func (fh *frameHolder) get(index int) *rules.Snapshot {
	fh.RLock()
	defer fh.RUnlock()

	if index < 0 || index >= len(fh.frames) {
		return nil
	}

	f := fh.frames[index]
	return &f
}

func (fh *frameHolder) latest() *rules.Snapshot {
	return fh.get(fh.count() - 1)
}

func (fh *frameHolder) reset() {
	fh.Lock()
	defer fh.Unlock()

	fh.frames = nil
}

func (fh *frameHolder) count() int {
	fh.RLock()
	defer fh.RUnlock()

	return len(fh.frames)
}
