package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Room
	}{
		{"array", `[{"id":1,"name":"a"},{"id":2,"name":"b"}]`, []Room{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}},
		{"envelope", `{"count":1,"next":null,"previous":null,"results":[{"id":3,"name":"c"}]}`, []Room{{ID: 3, Name: "c"}}},
		{"empty body", ``, nil},
		{"empty array", `[]`, []Room{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeList[Room](json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeList_Malformed(t *testing.T) {
	for _, raw := range []string{`[1,2]`, `{"results":{}}`, `"text"`} {
		_, err := decodeList[Room](json.RawMessage(raw))
		assert.ErrorIs(t, err, ErrMalformedResponse, raw)
	}
}
