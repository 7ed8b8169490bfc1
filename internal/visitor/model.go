// Package visitor provides the tree house visitor roster and admission rules.
package visitor

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Action is the admission decision attached to a visitor.
// The set of variants is closed: Accept, AcceptWithNote, Refuse and Probation.
type Action interface {
	isAction()
}

// Accept welcomes the visitor unconditionally.
type Accept struct{}

// AcceptWithNote welcomes the visitor and passes a note along to the staff.
type AcceptWithNote struct {
	Note string
}

// Refuse turns the visitor away.
type Refuse struct{}

// Probation welcomes the visitor as a provisional member.
type Probation struct{}

func (Accept) isAction()         {}
func (AcceptWithNote) isAction() {}
func (Refuse) isAction()         {}
func (Probation) isAction()      {}

// Action kinds as written in roster files and JSON output.
const (
	KindAccept         = "accept"
	KindAcceptWithNote = "accept_with_note"
	KindRefuse         = "refuse"
	KindProbation      = "probation"
)

// ParseAction builds an Action from its kind. The note is only used by
// accept_with_note.
func ParseAction(kind, note string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindAccept:
		return Accept{}, nil
	case KindAcceptWithNote:
		return AcceptWithNote{Note: note}, nil
	case KindRefuse:
		return Refuse{}, nil
	case KindProbation:
		return Probation{}, nil
	default:
		return nil, fmt.Errorf("invalid visitor action: %q", kind)
	}
}

// ActionKind returns the kind string for a.
func ActionKind(a Action) string {
	switch a.(type) {
	case Accept:
		return KindAccept
	case AcceptWithNote:
		return KindAcceptWithNote
	case Refuse:
		return KindRefuse
	case Probation:
		return KindProbation
	default:
		return ""
	}
}

// Visitor is one roster entry.
type Visitor struct {
	Name   string
	Action Action
	Age    int8
}

// New creates a visitor with a case-folded name.
func New(name string, action Action, age int8) Visitor {
	return Visitor{
		Name:   foldName(name),
		Action: action,
		Age:    age,
	}
}

// Note returns the attached note, if the action carries one.
func (v Visitor) Note() string {
	if a, ok := v.Action.(AcceptWithNote); ok {
		return a.Note
	}
	return ""
}

type visitorJSON struct {
	Name   string `json:"name"`
	Action string `json:"action"`
	Note   string `json:"note,omitempty"`
	Age    int8   `json:"age"`
}

// MarshalJSON implements json.Marshaler.
func (v Visitor) MarshalJSON() ([]byte, error) {
	return json.Marshal(visitorJSON{
		Name:   v.Name,
		Action: ActionKind(v.Action),
		Note:   v.Note(),
		Age:    v.Age,
	})
}

// NormalizeName trims surrounding whitespace and case-folds a typed name.
func NormalizeName(raw string) string {
	return foldName(strings.TrimSpace(raw))
}

func foldName(s string) string {
	// Casers carry state, so one is created per call.
	return cases.Lower(language.Und).String(s)
}
