package scales

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"psiquitools/internal/clipboard"
	"psiquitools/internal/logging"

	"go.uber.org/zap"
)

// Result is the derived interpretation of a sheet.
//
// Unanswered items count as zero, so a partially filled sheet already maps to
// a band. Answered and Complete let callers tell the two apart.
type Result struct {
	Total    int
	Band     Band
	Answered int
	Complete bool
	Advisory *Advisory
}

// Sheet holds the answers of one administration of a scale.
type Sheet struct {
	Scale   *Scale
	Copied  *clipboard.Indicator
	answers map[string]int
}

// NewSheet starts an empty sheet for s.
func NewSheet(s *Scale) *Sheet {
	return &Sheet{
		Scale:   s,
		Copied:  clipboard.NewIndicator(clipboard.DefaultResetAfter),
		answers: make(map[string]int),
	}
}

// Select records value for itemID, replacing any earlier answer.
func (sh *Sheet) Select(itemID string, value int) error {
	item, ok := sh.Scale.Item(itemID)
	if !ok {
		return fmt.Errorf("%w: %s has no item %q", ErrUnknownItem, sh.Scale.ID, itemID)
	}
	if _, ok := item.Option(value); !ok {
		return fmt.Errorf("%w: %d for %s", ErrInvalidValue, value, itemID)
	}
	sh.answers[itemID] = value
	logging.Get(logging.CategoryScales).Debug("item selected",
		zap.String("scale", sh.Scale.ID),
		zap.String("item", itemID),
		zap.Int("value", value))
	return nil
}

// Value returns the answer for itemID and whether it was answered.
func (sh *Sheet) Value(itemID string) (int, bool) {
	v, ok := sh.answers[itemID]
	return v, ok
}

// Answers returns a copy of the current answers.
func (sh *Sheet) Answers() map[string]int {
	out := make(map[string]int, len(sh.answers))
	for k, v := range sh.answers {
		out[k] = v
	}
	return out
}

// Total sums the answered values.
func (sh *Sheet) Total() int {
	total := 0
	for _, v := range sh.answers {
		total += v
	}
	return total
}

// Result interprets the current total.
func (sh *Sheet) Result() Result {
	total := sh.Total()
	res := Result{
		Total:    total,
		Band:     sh.Scale.Interpret(total),
		Answered: len(sh.answers),
		Complete: len(sh.answers) == len(sh.Scale.Items),
	}
	if adv := sh.Scale.Advisory; adv != nil {
		if v, ok := sh.answers[adv.ItemID]; ok && v > 0 {
			res.Advisory = adv
		}
	}
	return res
}

// Reset clears every answer and the copied indicator.
func (sh *Sheet) Reset() {
	sh.answers = make(map[string]int)
	if sh.Copied != nil {
		sh.Copied.Clear()
	}
}

// Summary is the plain-text block exported to the clipboard.
func (sh *Sheet) Summary() string {
	res := sh.Result()

	var sb strings.Builder
	sb.WriteString(sh.Scale.Name + "\n")
	sb.WriteString("Total score: " + strconv.Itoa(res.Total) + "\n")
	sb.WriteString("Severity: " + res.Band.Label + "\n")
	sb.WriteString("Recommendation: " + res.Band.Action + "\n")
	if res.Advisory != nil {
		sb.WriteString(res.Advisory.Title + ": " + res.Advisory.Message + "\n")
	}
	sb.WriteString("\n")

	lines := make([]string, 0, len(sh.Scale.Items))
	for _, it := range sh.Scale.Items {
		value := "-"
		if v, ok := sh.answers[it.ID]; ok {
			value = strconv.Itoa(v)
		}
		lines = append(lines, it.Prompt+": "+value)
	}
	sb.WriteString(strings.Join(lines, "\n"))
	return sb.String()
}

// Copy writes the summary to w and marks the copied indicator. A failed write
// leaves the indicator untouched; it returns the indicator generation, or 0.
func (sh *Sheet) Copy(w clipboard.Writer, now time.Time) int {
	if !clipboard.Write(w, sh.Summary()) {
		return 0
	}
	if sh.Copied == nil {
		sh.Copied = clipboard.NewIndicator(clipboard.DefaultResetAfter)
	}
	return sh.Copied.Mark(now)
}
