// Package scales implements the clinical scale scoring engine: a fixed battery
// of ordinal-choice items summed into a total and mapped onto severity bands.
package scales

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownItem is returned when selecting an item the scale does not define.
	ErrUnknownItem = errors.New("unknown scale item")
	// ErrInvalidValue is returned when a value is not one of the item's options.
	ErrInvalidValue = errors.New("value is not an option of this item")
	// ErrUnknownScale is returned by the registry for an unregistered id.
	ErrUnknownScale = errors.New("unknown scale")
)

// OpenEnded marks the upper bound of the last severity band.
const OpenEnded = math.MaxInt

// Option is one discrete answer of an item.
type Option struct {
	Value int
	Label string
}

// Item is a single question of a battery.
type Item struct {
	ID      string
	Prompt  string
	Options []Option
}

// Option returns the option with the given value.
func (it Item) Option(value int) (Option, bool) {
	for _, o := range it.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// MaxValue is the largest value the item can contribute.
func (it Item) MaxValue() int {
	max := 0
	for _, o := range it.Options {
		if o.Value > max {
			max = o.Value
		}
	}
	return max
}

// Band is a contiguous score range with a qualitative label and recommended
// action. Max is inclusive; the last band uses OpenEnded.
type Band struct {
	Max    int
	Label  string
	Action string
}

// Advisory is a standing notice raised when the named item scores above zero.
// It never affects the total.
type Advisory struct {
	ItemID  string
	Title   string
	Message string
}

// Scale is an immutable battery definition.
type Scale struct {
	ID           string
	Name         string
	Subtitle     string
	Description  string
	Instructions string
	Note         string
	Items        []Item
	Bands        []Band
	Advisory     *Advisory
}

// Item returns the item with the given id.
func (s *Scale) Item(id string) (Item, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// MaxScore is the highest reachable total.
func (s *Scale) MaxScore() int {
	total := 0
	for _, it := range s.Items {
		total += it.MaxValue()
	}
	return total
}

// Interpret returns the first band whose bound is not exceeded by total.
// Bands are evaluated least to greatest; the open final band always matches.
func (s *Scale) Interpret(total int) Band {
	for _, b := range s.Bands {
		if total <= b.Max {
			return b
		}
	}
	return s.Bands[len(s.Bands)-1]
}

// Validate checks that the definition is internally consistent.
func (s *Scale) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("scale has no id")
	}
	if len(s.Items) == 0 {
		return fmt.Errorf("scale %s has no items", s.ID)
	}

	seen := make(map[string]bool, len(s.Items))
	for _, it := range s.Items {
		if it.ID == "" {
			return fmt.Errorf("scale %s: item without id", s.ID)
		}
		if seen[it.ID] {
			return fmt.Errorf("scale %s: duplicate item %s", s.ID, it.ID)
		}
		seen[it.ID] = true

		if len(it.Options) == 0 {
			return fmt.Errorf("scale %s: item %s has no options", s.ID, it.ID)
		}
		values := make(map[int]bool, len(it.Options))
		for _, o := range it.Options {
			if o.Value < 0 {
				return fmt.Errorf("scale %s: item %s has negative option %d", s.ID, it.ID, o.Value)
			}
			if values[o.Value] {
				return fmt.Errorf("scale %s: item %s repeats option %d", s.ID, it.ID, o.Value)
			}
			values[o.Value] = true
		}
	}

	if len(s.Bands) == 0 {
		return fmt.Errorf("scale %s has no severity bands", s.ID)
	}
	prev := -1
	for i, b := range s.Bands {
		if b.Max <= prev {
			return fmt.Errorf("scale %s: band %q does not increase", s.ID, b.Label)
		}
		if i == len(s.Bands)-1 && b.Max != OpenEnded {
			return fmt.Errorf("scale %s: last band must be open-ended", s.ID)
		}
		prev = b.Max
	}

	if s.Advisory != nil && !seen[s.Advisory.ItemID] {
		return fmt.Errorf("scale %s: advisory item %s not defined", s.ID, s.Advisory.ItemID)
	}

	return nil
}
