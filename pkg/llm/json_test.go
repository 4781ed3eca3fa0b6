package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decoded struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    decoded
		wantErr bool
	}{
		{
			name: "plain object",
			raw:  `{"intent": "new_search", "confidence": 0.9}`,
			want: decoded{Intent: "new_search", Confidence: 0.9},
		},
		{
			name: "fenced json block",
			raw:  "```json\n{\"intent\": \"refine_search\", \"confidence\": 0.7}\n```",
			want: decoded{Intent: "refine_search", Confidence: 0.7},
		},
		{
			name: "bare fence",
			raw:  "```\n{\"intent\": \"greeting\"}\n```",
			want: decoded{Intent: "greeting"},
		},
		{
			name: "object surrounded by prose",
			raw:  "Here is my analysis:\n{\"intent\": \"commitment\", \"confidence\": 1}\nLet me know if you need more.",
			want: decoded{Intent: "commitment", Confidence: 1},
		},
		{
			name:    "no object at all",
			raw:     "I could not determine the intent.",
			wantErr: true,
		},
		{
			name:    "malformed json",
			raw:     `{"intent": "new_search", "confidence": }`,
			wantErr: true,
		},
		{
			name:    "empty response",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeJSON[decoded](tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
