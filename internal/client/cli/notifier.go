package cli

import (
	"fmt"
	"io"
	"sync"
)

// notifier prints pipeline messages on their own line. Requests may finish
// concurrently, so writes are serialized.
type notifier struct {
	mu  sync.Mutex
	out io.Writer
}

func newNotifier(out io.Writer) *notifier {
	return &notifier{out: out}
}

func (n *notifier) Notify(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "! %s\n", msg)
}
