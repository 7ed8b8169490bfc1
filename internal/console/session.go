// Package console runs the interactive visitor check-in loop.
package console

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/evcraddock/treehouse/internal/visitor"
)

// Prompt is printed before every name is read.
const Prompt = "Hello, what's your name? (Leave empty and press ENTER to quit)"

// Session reads names from In and greets them against Roster until an
// empty line is entered.
type Session struct {
	In     io.Reader
	Out    io.Writer
	Roster *visitor.Roster
	Logger *slog.Logger

	// JSON dumps the final roster as JSON instead of a table.
	JSON bool
}

// Run drives the session to completion and dumps the final roster.
// A read failure ends the session with an error; end of input ends it
// like an empty line.
func (s *Session) Run() error {
	log := s.Logger
	if log == nil {
		log = slog.Default()
	}

	in := bufio.NewReader(s.In)
	for {
		if _, err := fmt.Fprintln(s.Out, Prompt); err != nil {
			return fmt.Errorf("writing prompt: %w", err)
		}

		name, err := readName(in)
		if err != nil {
			return err
		}
		if name == "" {
			break
		}

		_, known := s.Roster.Find(name)
		log.Debug("visitor lookup", "name", name, "known", known)

		if err := s.Roster.Admit(s.Out, name); err != nil {
			return err
		}
	}

	log.Debug("session ended", "visitors", s.Roster.Len())
	return s.dump()
}

func (s *Session) dump() error {
	if !s.JSON {
		return s.Roster.Dump(s.Out)
	}

	enc := json.NewEncoder(s.Out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.Roster.Visitors()); err != nil {
		return fmt.Errorf("writing roster: %w", err)
	}
	return nil
}

// readName reads one line and normalizes it.
func readName(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading name: %w", err)
	}
	return visitor.NormalizeName(line), nil
}
