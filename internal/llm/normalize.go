package llm

import (
	"encoding/json"
	"strings"

	"github.com/transcriptions-ai/transcriber/internal/domain"
	"github.com/transcriptions-ai/transcriber/pkg/util"
)

// NormalizeKeys recursively rewrites every mapping key to lowercase with
// internal spaces removed. Scalar values pass through unchanged. The
// transformation is idempotent, which makes the stored schema stable no
// matter how the provider cases its keys.
func NormalizeKeys(value any) any {
	switch v := value.(type) {
	case map[string]any:
		normalized := make(map[string]any, len(v))
		for key, item := range v {
			normalized[normalizeKey(key)] = NormalizeKeys(item)
		}
		return normalized
	case []any:
		normalized := make([]any, len(v))
		for i, item := range v {
			normalized[i] = NormalizeKeys(item)
		}
		return normalized
	default:
		return value
	}
}

func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(key), " ", "")
}

// DecodeTickets parses a raw completion as the expected ticket payload and
// returns the normalized tickets. Text that does not decode strictly as
// JSON fails with a malformed-response error; no best-effort repair.
func DecodeTickets(raw string) ([]domain.Ticket, error) {
	var payload any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, util.NewMalformedResponse("completion is not valid JSON", err)
	}

	normalized, ok := NormalizeKeys(payload).(map[string]any)
	if !ok {
		return nil, util.NewMalformedResponse("completion is not a JSON object", nil)
	}

	rawTickets, ok := normalized["tickets"]
	if !ok {
		return nil, util.NewMalformedResponse("completion has no tickets field", nil)
	}

	encoded, err := json.Marshal(rawTickets)
	if err != nil {
		return nil, util.NewMalformedResponse("tickets field is not serializable", err)
	}

	var tickets []domain.Ticket
	if err := json.Unmarshal(encoded, &tickets); err != nil {
		return nil, util.NewMalformedResponse("tickets do not match the expected shape", err)
	}
	return tickets, nil
}
