package visitor

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Roster is the ordered list of known visitors for one session.
// It is not safe for concurrent use.
type Roster struct {
	visitors []Visitor
}

// NewRoster creates a roster holding the given visitors in order.
func NewRoster(visitors ...Visitor) *Roster {
	r := &Roster{visitors: make([]Visitor, 0, len(visitors))}
	r.visitors = append(r.visitors, visitors...)
	return r
}

// Seed returns the default roster used when no roster file is configured.
func Seed() *Roster {
	return NewRoster(
		New("simon", Accept{}, 31),
		New("dexter", AcceptWithNote{Note: "Lactose-free milk is in the fridge"}, 1),
		New("luffy", Probation{}, 1),
		New("maria", Refuse{}, 20),
	)
}

// Find returns the first visitor whose name equals name.
// name must already be normalized.
func (r *Roster) Find(name string) (Visitor, bool) {
	for _, v := range r.visitors {
		if v.Name == name {
			return v, true
		}
	}
	return Visitor{}, false
}

// Add appends a visitor. Duplicate names are allowed.
func (r *Roster) Add(v Visitor) {
	r.visitors = append(r.visitors, v)
}

// Len returns the number of roster entries.
func (r *Roster) Len() int {
	return len(r.visitors)
}

// Visitors returns a copy of the roster entries in order.
func (r *Roster) Visitors() []Visitor {
	out := make([]Visitor, len(r.visitors))
	copy(out, r.visitors)
	return out
}

// Admit looks name up and writes the greeting its admission action calls for.
// Unknown names are reported and added to the roster on probation with age 0.
// The only error returned is a failure writing to w.
func (r *Roster) Admit(w io.Writer, name string) error {
	if v, ok := r.Find(name); ok {
		return Greet(w, v)
	}

	if _, err := fmt.Fprintf(w, "%s is not on the visitor list.\n", name); err != nil {
		return fmt.Errorf("writing greeting: %w", err)
	}
	r.Add(Visitor{Name: name, Action: Probation{}, Age: 0})
	return nil
}

// Greet writes the message for a known visitor.
func Greet(w io.Writer, v Visitor) error {
	var lines []string
	switch a := v.Action.(type) {
	case Accept:
		lines = append(lines, welcomeLine(v.Name))
	case AcceptWithNote:
		lines = append(lines, welcomeLine(v.Name), a.Note)
		if v.Age < 21 {
			lines = append(lines, fmt.Sprintf("Do not serve alcohol to %s", v.Name))
		}
	case Probation:
		lines = append(lines, fmt.Sprintf("%s is now a probation member", v.Name))
	case Refuse:
		lines = append(lines, fmt.Sprintf("Do not allow %s in!", v.Name))
	default:
		return fmt.Errorf("visitor %q has no admission action", v.Name)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing greeting: %w", err)
		}
	}
	return nil
}

func welcomeLine(name string) string {
	return fmt.Sprintf("Welcome to the tree house, %s", name)
}

// Dump writes the roster as an aligned table, one visitor per line.
func (r *Roster) Dump(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "New list:"); err != nil {
		return fmt.Errorf("writing roster heading: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "NAME\tACTION\tAGE\tNOTE"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, "----\t------\t---\t----"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, v := range r.visitors {
		note := v.Note()
		if note == "" {
			note = "-"
		}
		if _, err := fmt.Fprintf(tw, "%q\t%s\t%d\t%s\n", v.Name, ActionKind(v.Action), v.Age, note); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	_, err := fmt.Fprintf(w, "\nTotal: %d visitors\n", len(r.visitors))
	return err
}
