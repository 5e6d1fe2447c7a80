package outfmt

import (
	"strings"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	var sb strings.Builder
	if err := WriteJSON(&sb, map[string]any{"running": true}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	want := "{\n  \"running\": true\n}\n"
	if sb.String() != want {
		t.Fatalf("WriteJSON() = %q, want %q", sb.String(), want)
	}
}

func TestWriteJSONQuery(t *testing.T) {
	cases := []struct {
		name    string
		value   any
		query   string
		want    string
		wantErr bool
	}{
		{
			name:  "empty query passes through",
			value: []string{"a"},
			query: "",
			want:  "[\n  \"a\"\n]\n",
		},
		{
			name:  "field extraction",
			value: map[string]any{"description": "standup", "duration": 900},
			query: ".description",
			want:  "\"standup\"\n",
		},
		{
			name:  "iteration yields one document per result",
			value: []map[string]any{{"id": 1}, {"id": 2}},
			query: ".[].id",
			want:  "1\n2\n",
		},
		{
			name:    "invalid expression",
			value:   map[string]any{},
			query:   ".[",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var sb strings.Builder
			err := WriteJSONQuery(&sb, tc.value, tc.query)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("WriteJSONQuery() error = %v", err)
			}
			if sb.String() != tc.want {
				t.Fatalf("WriteJSONQuery() = %q, want %q", sb.String(), tc.want)
			}
		})
	}
}
