package binedit

import "fmt"

// Strategy selects the chunk implementation a Factory produces.
type Strategy int

const (
	// StrategyAuto lets the factory pick an implementation.
	StrategyAuto Strategy = iota

	// StrategyMemory always produces in-memory chunks.
	StrategyMemory
)

// Factory constructs chunks using a fixed strategy. The zero value uses
// StrategyAuto. Today every strategy resolves to the in-memory kind; the
// seam exists so new kinds (file-backed, mapped) can be added without
// touching the Editor.
type Factory struct {
	strategy Strategy
}

// NewFactory returns a factory with the given strategy.
func NewFactory(strategy Strategy) Factory {
	return Factory{strategy: strategy}
}

// NewChunk constructs a chunk viewing [offset, offset+size) of blob using the
// active strategy. Fails with ErrUnknownStrategy for an unrecognized
// strategy, ErrNilBlob for absent storage, or ErrOffsetBeyondSize if offset
// exceeds size.
func (f Factory) NewChunk(blob []byte, size, offset int64) (Chunk, error) {
	switch f.strategy {
	case StrategyAuto, StrategyMemory:
		return newMemoryChunk(blob, size, offset)
	default:
		return nil, fmt.Errorf("create chunk: %w (strategy %d)", ErrUnknownStrategy, f.strategy)
	}
}
