package shell

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// signalFlag records interrupt/stop signals asynchronously. The main loop
// consumes the flag between commands; receipt only prints a newline so the
// prompt re-renders cleanly. Nothing is forwarded to running children
// beyond default OS delivery.
type signalFlag struct {
	ch      chan os.Signal
	pending int32
}

func watchSignals(w io.Writer) *signalFlag {
	f := &signalFlag{ch: make(chan os.Signal, 4)}
	signal.Notify(f.ch, syscall.SIGINT, syscall.SIGTSTP)

	go func() {
		for range f.ch {
			atomic.StoreInt32(&f.pending, 1)
			fmt.Fprintln(w)
		}
	}()

	return f
}

// consume reports and clears the pending flag.
func (f *signalFlag) consume() bool {
	return atomic.SwapInt32(&f.pending, 0) == 1
}

func (f *signalFlag) stop() {
	signal.Stop(f.ch)
	close(f.ch)
}
