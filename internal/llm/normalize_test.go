package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transcriptions-ai/transcriber/internal/domain"
	"github.com/transcriptions-ai/transcriber/pkg/util"
)

func TestNormalizeKeysCanonicalizes(t *testing.T) {
	input := map[string]any{
		"Tickets": []any{
			map[string]any{"Subject": "A", "EstimationPoints": 2},
		},
	}

	got := NormalizeKeys(input)

	want := map[string]any{
		"tickets": []any{
			map[string]any{"subject": "A", "estimationpoints": 2},
		},
	}
	assert.Equal(t, want, got)
}

func TestNormalizeKeysStripsSpaces(t *testing.T) {
	input := map[string]any{
		"Estimation Points": 3,
		"Sub Ticket ID":     "abc",
	}

	got := NormalizeKeys(input)

	want := map[string]any{
		"estimationpoints": 3,
		"subticketid":      "abc",
	}
	assert.Equal(t, want, got)
}

func TestNormalizeKeysIdempotent(t *testing.T) {
	input := map[string]any{
		"Tickets": []any{
			map[string]any{
				"Subject":           "Build login page",
				"Body":              "Implement auth form",
				"Estimation Points": 3,
				"Nested": map[string]any{
					"Inner Key": []any{map[string]any{"Deep Key": true}},
				},
			},
		},
	}

	once := NormalizeKeys(input)
	twice := NormalizeKeys(once)
	assert.Equal(t, once, twice)
}

func TestNormalizeKeysScalarsPassThrough(t *testing.T) {
	assert.Equal(t, "UNCHANGED Value", NormalizeKeys("UNCHANGED Value"))
	assert.Equal(t, 42, NormalizeKeys(42))
	assert.Nil(t, NormalizeKeys(nil))
}

func TestDecodeTickets(t *testing.T) {
	raw := `{"tickets":[{"Subject":"Build login page","Body":"Implement auth form","EstimationPoints":3}]}`

	tickets, err := DecodeTickets(raw)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, domain.Ticket{
		Subject:          "Build login page",
		Body:             "Implement auth form",
		EstimationPoints: 3,
	}, tickets[0])
}

func TestDecodeTicketsMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":        "here are your tickets!",
		"not an object":   `["tickets"]`,
		"missing tickets": `{"items": []}`,
		"wrong shape":     `{"tickets": [{"Subject": "a", "EstimationPoints": "three"}]}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeTickets(raw)
			require.Error(t, err)
			assert.True(t, util.IsCode(err, "MALFORMED_RESPONSE"))
		})
	}
}
