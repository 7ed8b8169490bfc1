package web

import (
	"encoding/json"
	"net/http"
)

// SumRequest is the body of POST /api/sum.
type SumRequest struct {
	N uint64 `json:"n"`
	M uint64 `json:"m"`
}

// SumResponse is the reply from POST /api/sum.
type SumResponse struct {
	N   uint64 `json:"n"`
	M   uint64 `json:"m"`
	Sum uint64 `json:"sum"`
}

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	apiJSON(w, map[string]string{"error": msg}, code)
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiSum adds n and m from a JSON body.
func (s *Server) apiSum(w http.ResponseWriter, r *http.Request) {
	var req SumRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		s.metrics.requests.WithLabelValues(endpointAPI, outcomeRejected).Inc()
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	total, err := addOperands(req.N, req.M)
	if err != nil {
		s.metrics.requests.WithLabelValues(endpointAPI, outcomeRejected).Inc()
		apiError(w, "couldn't compute: "+err.Error(), http.StatusBadRequest)
		return
	}

	s.metrics.requests.WithLabelValues(endpointAPI, outcomeOK).Inc()
	apiJSON(w, SumResponse{N: req.N, M: req.M, Sum: total}, http.StatusOK)
}
