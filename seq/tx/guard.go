package tx

// Guard runs a rollback function on Close unless Complete was called first.
type Guard struct {
	rollback func()
	complete bool
}

// NewGuard arms a guard. A nil rollback is allowed and does nothing.
func NewGuard(rollback func()) *Guard {
	return &Guard{rollback: rollback}
}

// Complete disarms the guard.
func (g *Guard) Complete() { g.complete = true }

// Completed reports whether Complete has been called.
func (g *Guard) Completed() bool { return g.complete }

// Close runs the rollback once if the guard was not completed.
func (g *Guard) Close() {
	if g.complete {
		return
	}
	g.complete = true
	if g.rollback != nil {
		g.rollback()
	}
}
