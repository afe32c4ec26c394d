package grader

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFieldAliases(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantOK  *bool
		wantCor string
		wantTip string
		wantWhy string
	}{
		{
			name:    "canonical",
			content: `{"answers":[{"index":0,"ok":true,"correction":"c","tip":"t","why":"w"}]}`,
			wantOK:  boolPtr(true), wantCor: "c", wantTip: "t", wantWhy: "w",
		},
		{
			name:    "aliased fields",
			content: `{"results":[{"index":0,"correct":false,"suggestion":"s","hint":"h","reason":"r"}]}`,
			wantOK:  boolPtr(false), wantCor: "s", wantTip: "h", wantWhy: "r",
		},
		{
			name:    "model and rationale",
			content: `{"grades":[{"index":0,"passed":true,"model":"m","rationale":"ra"}]}`,
			wantOK:  boolPtr(true), wantCor: "m", wantWhy: "ra",
		},
		{
			name:    "items array key",
			content: `{"items":[{"index":0,"ok":false}]}`,
			wantOK:  boolPtr(false),
		},
		{
			name:    "quoted values",
			content: `{"answers":[{"index":"0","ok":"yes"}]}`,
			wantOK:  boolPtr(true),
		},
		{
			name:    "no verdict fields",
			content: `{"answers":[{"index":0,"tip":"only a tip"}]}`,
			wantTip: "only a tip",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := decodeResult(json.RawMessage(tt.content), 1)
			require.Len(t, res.Verdicts, 1)

			v := res.Verdicts[0]
			assert.Equal(t, tt.wantOK, v.OK)
			assert.Equal(t, tt.wantCor, v.Correction)
			assert.Equal(t, tt.wantTip, v.Tip)
			assert.Equal(t, tt.wantWhy, v.Why)
		})
	}
}

func TestDecodeDegradesSilently(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `this is not JSON`},
		{"wrong shape", `[1,2,3]`},
		{"no known array key", `{"stuff":[{"index":0,"ok":true}]}`},
		{"out of range index", `{"answers":[{"index":9,"ok":true}]}`},
		{"negative index", `{"answers":[{"index":-1,"ok":true}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := decodeResult(json.RawMessage(tt.content), 2)
			require.Len(t, res.Verdicts, 2)
			for _, v := range res.Verdicts {
				assert.Nil(t, v.OK)
			}
		})
	}
}

func TestDecodeMissingIndexUsesPosition(t *testing.T) {
	content := `{"answers":[{"ok":true},{"ok":false,"correction":"fix"}]}`
	res := decodeResult(json.RawMessage(content), 2)
	require.Len(t, res.Verdicts, 2)

	require.NotNil(t, res.Verdicts[0].OK)
	assert.True(t, *res.Verdicts[0].OK)

	require.NotNil(t, res.Verdicts[1].OK)
	assert.False(t, *res.Verdicts[1].OK)
	assert.Equal(t, "fix", res.Verdicts[1].Correction)
}

func boolPtr(b bool) *bool { return &b }
