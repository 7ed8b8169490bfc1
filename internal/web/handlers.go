package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/evcraddock/treehouse/internal/sum"
)

var errZeroOperand = errors.New("operands must be non-zero")

// handleIndex renders the calculator form.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.index.Execute(w, nil); err != nil {
		slog.Error("rendering index", "err", err)
	}
}

// handleSum adds the n and m form fields.
func (s *Server) handleSum(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := r.ParseForm(); err != nil {
		s.rejectForm(w, err)
		return
	}

	n, m, total, err := compute(r.PostFormValue("n"), r.PostFormValue("m"))
	if err != nil {
		s.rejectForm(w, err)
		return
	}

	s.metrics.requests.WithLabelValues(endpointForm, outcomeOK).Inc()
	if _, err := fmt.Fprintf(w, "The sum of the numbers %d and %d is <b>%d</b>\n", n, m, total); err != nil {
		slog.Error("writing sum response", "err", err)
	}
}

func (s *Server) rejectForm(w http.ResponseWriter, err error) {
	slog.Debug("sum rejected", "err", err)
	s.metrics.requests.WithLabelValues(endpointForm, outcomeRejected).Inc()
	w.WriteHeader(http.StatusBadRequest)
	if _, err := fmt.Fprint(w, "couldn't compute"); err != nil {
		slog.Error("writing sum response", "err", err)
	}
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// compute parses both operands and adds them.
func compute(rawN, rawM string) (n, m, total uint64, err error) {
	if n, err = parseOperand("n", rawN); err != nil {
		return 0, 0, 0, err
	}
	if m, err = parseOperand("m", rawM); err != nil {
		return 0, 0, 0, err
	}
	if total, err = addOperands(n, m); err != nil {
		return 0, 0, 0, err
	}
	return n, m, total, nil
}

// addOperands adds two operands, neither of which may be zero.
func addOperands(n, m uint64) (uint64, error) {
	if n == 0 || m == 0 {
		return 0, errZeroOperand
	}
	return sum.Add(n, m)
}

// parseOperand parses an unsigned decimal integer.
func parseOperand(field, raw string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", field, err)
	}
	return v, nil
}
