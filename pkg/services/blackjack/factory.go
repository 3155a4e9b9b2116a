package blackjack

import (
	"sync"

	"github.com/fadedpez/blackjack/internal/types"
)

// Factory hands out games with increasing numbers. It is safe for
// concurrent use.
type Factory struct {
	mu    sync.Mutex
	first int
	next  int
	opts  []Option
}

// NewFactory creates a factory numbering games from 1 whose games all share opts
func NewFactory(opts ...Option) *Factory {
	return NewFactoryAt(1, opts...)
}

// NewFactoryAt creates a factory whose first game is numbered first. Numbers
// below 1 start at 1.
func NewFactoryAt(first int, opts ...Option) *Factory {
	first = max(first, 1)
	return &Factory{
		first: first,
		next:  first,
		opts:  opts,
	}
}

// NewGame creates the next game with the given starting wallet
func (f *Factory) NewGame(wallet int64) (*Game, error) {
	if wallet < 0 {
		return nil, types.NewGameErrorf(types.ErrInvalidArgument, "wallet must not be negative, got %d", wallet)
	}

	f.mu.Lock()
	number := f.next
	f.next++
	f.mu.Unlock()

	return NewGame(number, wallet, f.opts...)
}

// GamesCreated returns how many games the factory has handed out
func (f *Factory) GamesCreated() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.next - f.first
}
