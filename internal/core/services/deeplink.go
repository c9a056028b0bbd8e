package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/raylink/internal/core/domain"
)

// wireArguments is the JSON object carried in the arguments parameter.
// Inputs is itself a JSON document encoded as a string: the extension
// JSON-parses it a second time.
type wireArguments struct {
	PromptPath string `json:"promptPath"`
	Inputs     string `json:"inputs,omitempty"`
}

// BuildDeeplink returns the deeplink URL invoking target with promptPath
// and, when non-empty, inputs. The result depends only on its arguments.
func BuildDeeplink(target domain.Target, promptPath string, inputs domain.InputValues) (string, error) {
	if promptPath == "" {
		return "", fmt.Errorf("%w: prompt path is empty", domain.ErrInvalidInput)
	}
	if err := target.Validate(); err != nil {
		return "", err
	}

	payload, err := EncodeArguments(promptPath, inputs)
	if err != nil {
		return "", err
	}

	return target.Prefix() + "?" + domain.ArgumentsParam + "=" + EscapeQueryComponent(payload), nil
}

// EncodeArguments returns the JSON payload for promptPath and inputs
// before percent-encoding.
func EncodeArguments(promptPath string, inputs domain.InputValues) (string, error) {
	if !utf8.ValidString(promptPath) {
		return "", fmt.Errorf("%w: prompt path %q is not valid UTF-8", domain.ErrEncoding, promptPath)
	}
	if err := checkUTF8("inputs", map[string]any(inputs)); err != nil {
		return "", err
	}

	args := wireArguments{PromptPath: promptPath}

	if len(inputs) > 0 {
		encoded, err := marshalCompact(map[string]any(inputs))
		if err != nil {
			return "", fmt.Errorf("%w: inputs: %v", domain.ErrEncoding, err)
		}
		args.Inputs = encoded
	}

	payload, err := marshalCompact(args)
	if err != nil {
		return "", fmt.Errorf("%w: arguments: %v", domain.ErrEncoding, err)
	}
	return payload, nil
}

// checkUTF8 rejects strings that encoding/json would rewrite to U+FFFD.
func checkUTF8(where string, v any) error {
	switch v := v.(type) {
	case string:
		if !utf8.ValidString(v) {
			return fmt.Errorf("%w: %s value %q is not valid UTF-8", domain.ErrEncoding, where, v)
		}
	case []string:
		for _, item := range v {
			if err := checkUTF8(where, item); err != nil {
				return err
			}
		}
	case []any:
		for _, item := range v {
			if err := checkUTF8(where, item); err != nil {
				return err
			}
		}
	case map[string]any:
		for key, item := range v {
			if !utf8.ValidString(key) {
				return fmt.Errorf("%w: %s key %q is not valid UTF-8", domain.ErrEncoding, where, key)
			}
			if err := checkUTF8(where+"."+key, item); err != nil {
				return err
			}
		}
	case domain.InputValues:
		return checkUTF8(where, map[string]any(v))
	}
	return nil
}

// EscapeQueryComponent percent-encodes every byte of s except the RFC 3986
// unreserved set. Spaces become %20 rather than '+'.
func EscapeQueryComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// marshalCompact encodes v as compact JSON with <, > and & left literal.
func marshalCompact(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// DecodeDeeplink parses a deeplink URL into its target and arguments.
// The inputs string, when present, is parsed into a JSON object.
func DecodeDeeplink(rawURL string) (*domain.Deeplink, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDeeplink, err)
	}
	if u.Scheme == "" {
		return nil, fmt.Errorf("%w: missing scheme", domain.ErrInvalidDeeplink)
	}
	if u.Host != "extensions" {
		return nil, fmt.Errorf("%w: expected host \"extensions\", got %q", domain.ErrInvalidDeeplink, u.Host)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) != 3 {
		return nil, fmt.Errorf("%w: expected /<publisher>/<extension>/<command>, got %q",
			domain.ErrInvalidDeeplink, u.Path)
	}
	target := domain.Target{
		Scheme:    u.Scheme,
		Publisher: segments[0],
		Extension: segments[1],
		Command:   segments[2],
	}
	if err := target.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDeeplink, err)
	}

	query, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: query: %v", domain.ErrInvalidDeeplink, err)
	}
	if !query.Has(domain.ArgumentsParam) {
		return nil, fmt.Errorf("%w: missing %s parameter", domain.ErrInvalidDeeplink, domain.ArgumentsParam)
	}

	args, err := DecodeArguments(query.Get(domain.ArgumentsParam))
	if err != nil {
		return nil, err
	}

	return &domain.Deeplink{
		URL:       rawURL,
		Target:    target,
		Arguments: *args,
	}, nil
}

// DecodeArguments parses the JSON payload of the arguments parameter.
func DecodeArguments(payload string) (*domain.Arguments, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return nil, fmt.Errorf("%w: arguments are not a JSON object: %v", domain.ErrInvalidDeeplink, err)
	}

	var promptPath string
	if raw, ok := fields["promptPath"]; ok {
		if err := json.Unmarshal(raw, &promptPath); err != nil {
			return nil, fmt.Errorf("%w: promptPath is not a string", domain.ErrInvalidDeeplink)
		}
	}
	if promptPath == "" {
		return nil, fmt.Errorf("%w: promptPath is missing", domain.ErrInvalidDeeplink)
	}

	args := &domain.Arguments{PromptPath: promptPath}

	raw, ok := fields["inputs"]
	if !ok {
		return args, nil
	}
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, fmt.Errorf("%w: inputs must be a JSON-encoded string", domain.ErrInvalidDeeplink)
	}
	var inputs map[string]any
	if err := json.Unmarshal([]byte(encoded), &inputs); err != nil {
		return nil, fmt.Errorf("%w: inputs string is not a JSON object: %v", domain.ErrInvalidDeeplink, err)
	}
	if len(inputs) > 0 {
		args.Inputs = inputs
	}
	return args, nil
}
