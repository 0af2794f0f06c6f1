// SPDX-License-Identifier: MIT

package social

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/campusnet/student"
)

// Default simulated latencies.
const (
	DefaultFriendLatency = 50 * time.Millisecond
	DefaultChatLatency   = 30 * time.Millisecond
	DefaultWorkers       = 4
)

// Sentinel errors for simulator configuration.
var (
	ErrNilNetwork = errors.New("social: network is nil")
	ErrBadLatency = errors.New("social: latency must be non-negative")
	ErrBadWorkers = errors.New("social: workers must be positive")
)

// Options configures a Simulator.
type Options struct {
	FriendLatency time.Duration
	ChatLatency   time.Duration
	Workers       int // concurrent tasks in Run
	Logger        *zap.Logger

	err error
}

// Option represents a functional option for NewSimulator.
type Option func(*Options)

// WithFriendLatency sets the simulated friend request delay.
func WithFriendLatency(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: friend %s", ErrBadLatency, d)

			return
		}
		o.FriendLatency = d
	}
}

// WithChatLatency sets the simulated chat delivery delay.
func WithChatLatency(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: chat %s", ErrBadLatency, d)

			return
		}
		o.ChatLatency = d
	}
}

// WithWorkers bounds how many tasks Run executes at once.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w (%d)", ErrBadWorkers, n)

			return
		}
		o.Workers = n
	}
}

// WithLogger sets the activity logger. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the default latencies, DefaultWorkers and a no-op logger.
func DefaultOptions() Options {
	return Options{
		FriendLatency: DefaultFriendLatency,
		ChatLatency:   DefaultChatLatency,
		Workers:       DefaultWorkers,
		Logger:        zap.NewNop(),
	}
}

// Simulator runs friend requests and chats against a Network.
type Simulator struct {
	net        *Network
	opts       Options
	log        *zap.Logger
	friendGate *semaphore.Weighted
	chatGate   *semaphore.Weighted
}

// Task is one unit of simulated activity.
type Task func(ctx context.Context) error

// NewSimulator returns a Simulator over net.
func NewSimulator(net *Network, opts ...Option) (*Simulator, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return &Simulator{
		net:        net,
		opts:       cfg,
		log:        cfg.Logger.Named("social"),
		friendGate: semaphore.NewWeighted(1),
		chatGate:   semaphore.NewWeighted(1),
	}, nil
}

// Network returns the simulated network.
func (s *Simulator) Network() *Network { return s.net }

// FriendRequest makes from and to friends after the friend latency.
// Nil students and self-requests are ignored.
func (s *Simulator) FriendRequest(ctx context.Context, from, to *student.Student) error {
	if from == nil || to == nil || from.Name == to.Name {
		return nil
	}
	if err := s.friendGate.Acquire(ctx, 1); err != nil {
		return err
	}
	defer s.friendGate.Release(1)

	if err := sleep(ctx, s.opts.FriendLatency); err != nil {
		return err
	}
	if s.net.AddFriend(from, to) {
		s.log.Info("friend request accepted",
			zap.String("from", from.Name),
			zap.String("to", to.Name),
		)
	}

	return nil
}

// Chat delivers text from one student to another after the chat latency.
func (s *Simulator) Chat(ctx context.Context, from, to *student.Student, text string) (Message, error) {
	if from == nil || to == nil {
		return Message{}, ErrNilStudent
	}
	if err := s.chatGate.Acquire(ctx, 1); err != nil {
		return Message{}, err
	}
	defer s.chatGate.Release(1)

	if err := sleep(ctx, s.opts.ChatLatency); err != nil {
		return Message{}, err
	}
	m, err := s.net.Deliver(from, to, text)
	if err != nil {
		return Message{}, err
	}
	s.log.Info("chat sent", zap.Stringer("id", m.ID), zap.String("record", m.String()))

	return m, nil
}

// FriendRequestTask wraps FriendRequest as a Task.
func (s *Simulator) FriendRequestTask(from, to *student.Student) Task {
	return func(ctx context.Context) error {
		return s.FriendRequest(ctx, from, to)
	}
}

// ChatTask wraps Chat as a Task.
func (s *Simulator) ChatTask(from, to *student.Student, text string) Task {
	return func(ctx context.Context) error {
		_, err := s.Chat(ctx, from, to, text)

		return err
	}
}

// Run executes tasks concurrently, at most Options.Workers at a time, and
// waits for all of them. The first failure cancels the rest and is returned.
func (s *Simulator) Run(ctx context.Context, tasks ...Task) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for _, task := range tasks {
		if task == nil {
			continue
		}
		task := task
		g.Go(func() error {
			return task(gctx)
		})
	}

	return g.Wait()
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
