package console

// PaddingScope temporarily raises the console's padding level. Release
// stores the snapshot taken at construction back into the counter - a plain
// reset, not a subtraction - so it round-trips only under strict LIFO
// nesting. Releasing scopes out of order silently overwrites the padding
// value; callers are expected to pair ExtendPadding with an immediate
// deferred Release.
type PaddingScope struct {
	console *Console
	restore uint32
}

// ExtendPadding snapshots the current padding level and adds n to it. The
// returned scope must be released (typically with defer) to restore the
// snapshot. Padding is mutated atomically and without the print lock.
func (c *Console) ExtendPadding(n uint8) *PaddingScope {
	scope := &PaddingScope{
		console: c,
		restore: c.padding.Load(),
	}
	c.padding.Add(uint32(n))
	return scope
}

// Release resets the padding level to the value captured at construction
func (s *PaddingScope) Release() {
	s.console.padding.Store(s.restore)
}
