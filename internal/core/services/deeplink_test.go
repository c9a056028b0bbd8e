package services

import (
	"encoding/json"
	"math"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/raylink/internal/core/domain"
)

// argumentsPayload extracts the percent-decoded arguments value of a deeplink.
func argumentsPayload(t *testing.T, link string) string {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	values, err := url.ParseQuery(u.RawQuery)
	require.NoError(t, err)
	require.True(t, values.Has("arguments"))
	return values.Get("arguments")
}

func TestBuildDeeplink_PromptPathOnly(t *testing.T) {
	link, err := BuildDeeplink(domain.DefaultTarget(), "/opt/Notes/Prompts/exec/git modify last.md", nil)

	require.NoError(t, err)
	assert.Equal(t,
		"raycast://extensions/wheat2021/aurora-input-processor/processor-1?arguments="+
			"%7B%22promptPath%22%3A%22%2Fopt%2FNotes%2FPrompts%2Fexec%2Fgit%20modify%20last.md%22%7D",
		link)

	payload := argumentsPayload(t, link)
	assert.Equal(t, `{"promptPath":"/opt/Notes/Prompts/exec/git modify last.md"}`, payload)
	assert.JSONEq(t, `{"promptPath": "/opt/Notes/Prompts/exec/git modify last.md"}`, payload)
}

func TestBuildDeeplink_EmptyInputsAreOmitted(t *testing.T) {
	withNil, err := BuildDeeplink(domain.DefaultTarget(), "/tmp/a.md", nil)
	require.NoError(t, err)
	withEmpty, err := BuildDeeplink(domain.DefaultTarget(), "/tmp/a.md", domain.InputValues{})
	require.NoError(t, err)

	assert.Equal(t, withNil, withEmpty)
	assert.NotContains(t, argumentsPayload(t, withEmpty), "inputs")
}

func TestBuildDeeplink_InputsAreDoubleEncoded(t *testing.T) {
	link, err := BuildDeeplink(domain.DefaultTarget(), "/opt/code/repo", domain.InputValues{
		"commit_msg": "完整的提交信息",
	})
	require.NoError(t, err)

	payload := argumentsPayload(t, link)
	assert.Equal(t, `{"promptPath":"/opt/code/repo","inputs":"{\"commit_msg\":\"完整的提交信息\"}"}`, payload)

	var outer map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &outer))
	assert.Equal(t, "/opt/code/repo", outer["promptPath"])

	inner, ok := outer["inputs"].(string)
	require.True(t, ok, "inputs must be a JSON string, not an object")

	var inputs map[string]string
	require.NoError(t, json.Unmarshal([]byte(inner), &inputs))
	assert.Equal(t, map[string]string{"commit_msg": "完整的提交信息"}, inputs)
}

func TestBuildDeeplink_TypedInputs(t *testing.T) {
	link, err := BuildDeeplink(domain.DefaultTarget(), "/p.md", domain.InputValues{
		"tags":   []string{"a", "b"},
		"verify": true,
	})
	require.NoError(t, err)

	got, err := DecodeDeeplink(link)
	require.NoError(t, err)
	assert.Equal(t, domain.InputValues{
		"tags":   []any{"a", "b"},
		"verify": true,
	}, got.Arguments.Inputs)
}

func TestBuildDeeplink_ReservedCharactersAreEscaped(t *testing.T) {
	path := "/tmp/a&b=c?d/e+f#g.md"
	link, err := BuildDeeplink(domain.DefaultTarget(), path, domain.InputValues{"q": "x&y=z/?"})
	require.NoError(t, err)

	encoded := strings.TrimPrefix(link, domain.DefaultTarget().Prefix()+"?arguments=")
	assert.False(t, strings.ContainsAny(encoded, "&=/?+# "), "encoded payload %q", encoded)

	got, err := DecodeDeeplink(link)
	require.NoError(t, err)
	assert.Equal(t, path, got.Arguments.PromptPath)
	assert.Equal(t, domain.InputValues{"q": "x&y=z/?"}, got.Arguments.Inputs)
}

func TestBuildDeeplink_HTMLCharactersStayLiteral(t *testing.T) {
	payload, err := EncodeArguments("/p.md", domain.InputValues{"q": "a<b>&c"})

	require.NoError(t, err)
	assert.Equal(t, `{"promptPath":"/p.md","inputs":"{\"q\":\"a<b>&c\"}"}`, payload)
}

func TestBuildDeeplink_Idempotent(t *testing.T) {
	inputs := domain.InputValues{"b": "2", "a": "1", "c": "三"}

	first, err := BuildDeeplink(domain.DefaultTarget(), "/p.md", inputs)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := BuildDeeplink(domain.DefaultTarget(), "/p.md", inputs)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestBuildDeeplink_OtherCommand(t *testing.T) {
	target := domain.DefaultTarget()
	target.Command = "processor-4"

	link, err := BuildDeeplink(target, "/p.md", nil)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "raycast://extensions/wheat2021/aurora-input-processor/processor-4?arguments="))
}

func TestBuildDeeplink_Errors(t *testing.T) {
	t.Run("empty prompt path", func(t *testing.T) {
		_, err := BuildDeeplink(domain.DefaultTarget(), "", nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("invalid target", func(t *testing.T) {
		_, err := BuildDeeplink(domain.Target{}, "/p.md", nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unserialisable value", func(t *testing.T) {
		_, err := BuildDeeplink(domain.DefaultTarget(), "/p.md", domain.InputValues{"ch": make(chan int)})
		assert.ErrorIs(t, err, domain.ErrEncoding)
	})

	t.Run("NaN value", func(t *testing.T) {
		_, err := BuildDeeplink(domain.DefaultTarget(), "/p.md", domain.InputValues{"n": math.NaN()})
		assert.ErrorIs(t, err, domain.ErrEncoding)
	})

	invalidUTF8 := []struct {
		name       string
		promptPath string
		inputs     domain.InputValues
	}{
		{name: "invalid UTF-8 prompt path", promptPath: "/opt/\xff.md"},
		{name: "invalid UTF-8 input value", promptPath: "/p.md", inputs: domain.InputValues{"msg": "a\xfeb"}},
		{name: "invalid UTF-8 input key", promptPath: "/p.md", inputs: domain.InputValues{"\xff": "x"}},
		{name: "invalid UTF-8 string list item", promptPath: "/p.md", inputs: domain.InputValues{"tags": []string{"ok", "\xc3"}}},
		{name: "invalid UTF-8 nested item", promptPath: "/p.md", inputs: domain.InputValues{"meta": map[string]any{"list": []any{"\xff"}}}},
	}
	for _, tt := range invalidUTF8 {
		t.Run(tt.name, func(t *testing.T) {
			link, err := BuildDeeplink(domain.DefaultTarget(), tt.promptPath, tt.inputs)
			assert.ErrorIs(t, err, domain.ErrEncoding)
			assert.Empty(t, link)
		})
	}
}

func TestEscapeQueryComponent_RoundTrip(t *testing.T) {
	tests := []string{
		"",
		"plain",
		"with space",
		"完整的提交信息",
		"a&b=c/d?e",
		"100% + 50%",
		`{"promptPath":"/opt/x y.md","inputs":"{\"k\":\"v\"}"}`,
		"emoji 🚀 and ~unreserved-._",
	}

	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			encoded := EscapeQueryComponent(s)
			decoded, err := url.QueryUnescape(encoded)
			require.NoError(t, err)
			assert.Equal(t, s, decoded)

			decoded, err = url.PathUnescape(encoded)
			require.NoError(t, err)
			assert.Equal(t, s, decoded)
		})
	}
}

func TestEscapeQueryComponent_UnreservedLiteral(t *testing.T) {
	assert.Equal(t, "AZaz09-._~", EscapeQueryComponent("AZaz09-._~"))
	assert.Equal(t, "%20", EscapeQueryComponent(" "))
	assert.Equal(t, "%2B", EscapeQueryComponent("+"))
	assert.Equal(t, "%E4%B8%AD", EscapeQueryComponent("中"))
}

func TestDecodeDeeplink_RoundTrip(t *testing.T) {
	link, err := BuildDeeplink(domain.DefaultTarget(), "/opt/code/repo", domain.InputValues{
		"repo_path":  "/opt/code/aurora-raycast-plugin",
		"commit_msg": "完整的提交信息",
	})
	require.NoError(t, err)

	got, err := DecodeDeeplink(link)

	require.NoError(t, err)
	assert.Equal(t, link, got.URL)
	assert.Equal(t, domain.DefaultTarget(), got.Target)
	assert.Equal(t, "/opt/code/repo", got.Arguments.PromptPath)
	assert.Equal(t, domain.InputValues{
		"repo_path":  "/opt/code/aurora-raycast-plugin",
		"commit_msg": "完整的提交信息",
	}, got.Arguments.Inputs)
}

func TestDecodeDeeplink_AcceptsSlashSafeEncoding(t *testing.T) {
	// Encoders that leave '/' and spaces-as-%20 literal still decode.
	link := "raycast://extensions/wheat2021/aurora-input-processor/processor-1?arguments=" +
		"%7B%22promptPath%22%3A%20%22/opt/a%20b.md%22%7D"

	got, err := DecodeDeeplink(link)

	require.NoError(t, err)
	assert.Equal(t, "/opt/a b.md", got.Arguments.PromptPath)
	assert.Nil(t, got.Arguments.Inputs)
}

func TestDecodeDeeplink_Errors(t *testing.T) {
	prefix := domain.DefaultTarget().Prefix()
	tests := []struct {
		name string
		url  string
	}{
		{"not a url", "://"},
		{"no scheme", "extensions/a/b/c?arguments=%7B%7D"},
		{"wrong host", "raycast://commands/a/b/c?arguments=" + EscapeQueryComponent(`{"promptPath":"/p"}`)},
		{"too few segments", "raycast://extensions/a/b?arguments=" + EscapeQueryComponent(`{"promptPath":"/p"}`)},
		{"missing arguments", prefix},
		{"arguments not json", prefix + "?arguments=nope"},
		{"missing prompt path", prefix + "?arguments=" + EscapeQueryComponent(`{"inputs":"{}"}`)},
		{"prompt path not string", prefix + "?arguments=" + EscapeQueryComponent(`{"promptPath":1}`)},
		{"inputs as object", prefix + "?arguments=" + EscapeQueryComponent(`{"promptPath":"/p","inputs":{"a":"b"}}`)},
		{"inputs not object", prefix + "?arguments=" + EscapeQueryComponent(`{"promptPath":"/p","inputs":"[1]"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDeeplink(tt.url)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidDeeplink)
		})
	}
}
