package history

import (
	"psiquitools/internal/logging"

	"go.uber.org/zap"
)

// Wizard walks a record step by step. Navigation never validates.
type Wizard struct {
	Record *Record
	step   int
}

// NewWizard starts at the first step of r.
func NewWizard(r *Record) *Wizard {
	return &Wizard{Record: r}
}

// Index is the current step, in [0, len(Steps)).
func (w *Wizard) Index() int { return w.step }

// Current returns the current step.
func (w *Wizard) Current() Step { return Steps[w.step] }

// First reports whether the wizard is on the first step.
func (w *Wizard) First() bool { return w.step == 0 }

// Last reports whether the wizard is on the last step.
func (w *Wizard) Last() bool { return w.step == len(Steps)-1 }

// Next advances one step, stopping at the last.
func (w *Wizard) Next() { w.GoTo(w.step + 1) }

// Previous goes back one step, stopping at the first.
func (w *Wizard) Previous() { w.GoTo(w.step - 1) }

// GoTo jumps to step i, clamped to the valid range.
func (w *Wizard) GoTo(i int) {
	if i < 0 {
		i = 0
	}
	if i > len(Steps)-1 {
		i = len(Steps) - 1
	}
	if i != w.step {
		logging.Get(logging.CategoryHistory).Debug("step changed",
			zap.Int("from", w.step), zap.Int("to", i))
	}
	w.step = i
}
