package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Veraticus/number-classifier/internal/common"
	"github.com/Veraticus/number-classifier/internal/model"
	"github.com/Veraticus/number-classifier/internal/numbers"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/Veraticus/number-classifier/internal/server")

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("number")

	n, err := ParseNumber(raw)
	if err != nil {
		s.logger.Debug("Rejected classification request", "input", raw, "error", err)
		writeJSON(w, http.StatusBadRequest, model.InvalidNumberResponse{
			Number: raw,
			Error:  true,
		})
		return
	}

	result := numbers.Classify(n)
	result.FunFact = s.funFact(r.Context(), n)

	writeJSON(w, http.StatusOK, result)
}

// funFact fetches the fact for n, returning an empty string when the
// fact service is unavailable.
func (s *Server) funFact(ctx context.Context, n int64) string {
	if s.facts == nil {
		return ""
	}

	ctx, span := tracer.Start(ctx, "fetch fun fact")
	defer span.End()
	span.SetAttributes(attribute.Int64("number", n))

	ctx, cancel := context.WithTimeout(ctx, s.cfg.FactTimeout)
	defer cancel()

	fact, err := s.facts.Fact(ctx, n)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fact unavailable")
		s.logger.WarnContext(ctx, "Serving classification without fun fact",
			"number", n,
			"error", err)
		return ""
	}
	return fact
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ParseNumber parses a base-10 integer query value. An optional leading sign
// is accepted; whitespace, decimals and values outside int64 are not.
func ParseNumber(raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: number is required", common.ErrInvalidNumber)
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", common.ErrInvalidNumber, raw)
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		common.LogError(err, "Failed to write response", common.Fields{"status": status})
	}
}
