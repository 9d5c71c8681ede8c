package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sant0-9/nebulaextract/internal/intent"
)

func TestParseJSONObject(t *testing.T) {
	text := `{"summary":"Refund request.","intent":"refund","priority":"medium","entities":{"name":null,"email":"a@b.com","phone":null}}`

	res := ParseJSON(text)
	require.True(t, res.IsJSON())
	assert.Equal(t, text, res.Text)

	want := "{\n" +
		"  \"summary\": \"Refund request.\",\n" +
		"  \"intent\": \"refund\",\n" +
		"  \"priority\": \"medium\",\n" +
		"  \"entities\": {\n" +
		"    \"name\": null,\n" +
		"    \"email\": \"a@b.com\",\n" +
		"    \"phone\": null\n" +
		"  }\n" +
		"}"
	assert.Equal(t, want, res.Parsed.Pretty)

	ex := res.Parsed.Extraction
	require.NotNil(t, ex)
	require.NotNil(t, ex.Intent)
	assert.Equal(t, "refund", *ex.Intent)
	assert.Equal(t, intent.PriorityMedium, *ex.Priority)
	assert.Nil(t, ex.Entities.Name)
	require.NotNil(t, ex.Entities.Email)
	assert.Equal(t, "a@b.com", *ex.Entities.Email)

	obj, ok := res.Parsed.Value.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "refund", obj["intent"])
}

func TestParseJSONNonObjectValues(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "array", text: `[1, 2, 3]`},
		{name: "number", text: `42`},
		{name: "string", text: `"just a string"`},
		{name: "wrong field types", text: `{"intent": 5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ParseJSON(tt.text)
			require.True(t, res.IsJSON())
			assert.Nil(t, res.Parsed.Extraction)
		})
	}
}

func TestParseJSONKeepsNumbers(t *testing.T) {
	res := ParseJSON(`{"order": 12345678901234567890}`)
	require.True(t, res.IsJSON())

	obj := res.Parsed.Value.(map[string]any)
	assert.Equal(t, json.Number("12345678901234567890"), obj["order"])
}

func TestParseJSONFailures(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "prose", text: "Sure! Here is the JSON you asked for."},
		{name: "fenced leftovers", text: "{\"a\":1}\n``` done"},
		{name: "trailing garbage", text: `{"a":1} extra`},
		{name: "truncated", text: `{"summary": "cut off`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ParseJSON(tt.text)
			assert.False(t, res.IsJSON())
			assert.Nil(t, res.Parsed)
			assert.Equal(t, tt.text, res.Text)
		})
	}
}

func TestParseJSONPrettyMatchesReencode(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "escapes decoded",
			text: `{"summary":"caf\u00e9 \u003cok\u003e & more"}`,
			want: "{\n  \"summary\": \"café <ok> & more\"\n}",
		},
		{
			name: "duplicate key keeps first position and last value",
			text: `{"a":1,"b":2,"a":3}`,
			want: "{\n  \"a\": 3,\n  \"b\": 2\n}",
		},
		{
			name: "key order kept",
			text: `{"z":{"y":[],"x":{}},"m":[1.50,true,null,"s"]}`,
			want: "{\n" +
				"  \"z\": {\n" +
				"    \"y\": [],\n" +
				"    \"x\": {}\n" +
				"  },\n" +
				"  \"m\": [\n" +
				"    1.50,\n" +
				"    true,\n" +
				"    null,\n" +
				"    \"s\"\n" +
				"  ]\n" +
				"}",
		},
		{
			name: "scalar",
			text: `"caf\u00e9"`,
			want: `"café"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ParseJSON(tt.text)
			require.True(t, res.IsJSON())
			assert.Equal(t, tt.want, res.Parsed.Pretty)
		})
	}
}
