package view

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"
)

// maxFlushPasses bounds re-invalidation during a flush, e.g. a body that sets its own state
const maxFlushPasses = 16

// Scheduler collects pending nodes and requests one coalesced flush
type Scheduler struct {
	pending    []*Node
	pendingSet map[*Node]struct{}
	scheduled  bool

	// onNeedsFlush is called once per batch when the first node becomes pending
	onNeedsFlush func()
	logger       *log.Logger
}

// NewScheduler creates a scheduler; onNeedsFlush may be nil
func NewScheduler(onNeedsFlush func(), logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scheduler{
		pendingSet:   make(map[*Node]struct{}),
		onNeedsFlush: onNeedsFlush,
		logger:       logger,
	}
}

// InvalidateNode marks n pending; repeated calls before a flush are deduplicated
func (s *Scheduler) InvalidateNode(n *Node) {
	if _, ok := s.pendingSet[n]; ok {
		return
	}
	s.pendingSet[n] = struct{}{}
	s.pending = append(s.pending, n)

	if !s.scheduled {
		s.scheduled = true
		if s.onNeedsFlush != nil {
			s.onNeedsFlush()
		}
	}
}

// HasPending reports whether any node awaits an update
func (s *Scheduler) HasPending() bool {
	return len(s.pending) > 0
}

// Flush updates every pending node with its current description, shallowest first.
// It reports whether anything was updated
func (s *Scheduler) Flush() bool {
	s.scheduled = false
	updated := false
	for pass := 0; len(s.pending) > 0; pass++ {
		if pass == maxFlushPasses {
			s.logger.Warn("flush did not settle", "pending", len(s.pending))
			break
		}
		batch := s.pending
		s.pending = nil
		clear(s.pendingSet)

		slices.SortStableFunc(batch, func(a, b *Node) int { return a.depth() - b.depth() })
		for _, n := range batch {
			if n.destroyed {
				continue
			}
			n.Update(n.view)
			updated = true
		}
		s.logger.Debug("flush", "nodes", len(batch), "pass", pass)
	}
	s.scheduled = false
	return updated
}
