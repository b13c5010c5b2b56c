package domain

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"

	"pilot-server/internal/infra/utils"
)

// RequestBody is a decoded JSON object whose members are kept raw so that
// pass-through values keep their original bytes and key order.
type RequestBody map[string]json.RawMessage

// String returns the trimmed member when it is a JSON string and "" otherwise.
func (b RequestBody) String(key string) string {
	raw, ok := b[key]
	if !ok {
		return ""
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return utils.PickString(value)
}

// Object returns the member, compacted, when it is a JSON object or array.
// Invalid UTF-8 becomes U+FFFD, one per bad byte, as the decoder does for
// string members.
func (b RequestBody) Object(key string) (json.RawMessage, bool) {
	raw, ok := b[key]
	if !ok {
		return nil, false
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') {
		return nil, false
	}
	var compacted bytes.Buffer
	if err := json.Compact(&compacted, trimmed); err != nil {
		return nil, false
	}
	return toValidUTF8(compacted.Bytes()), true
}

// Invalid bytes can only sit inside JSON strings, where U+FFFD is legal.
func toValidUTF8(raw []byte) []byte {
	if utf8.Valid(raw) {
		return raw
	}
	valid := make([]byte, 0, len(raw)+8)
	for len(raw) > 0 {
		r, size := utf8.DecodeRune(raw)
		if r == utf8.RuneError && size == 1 {
			valid = utf8.AppendRune(valid, utf8.RuneError)
		} else {
			valid = append(valid, raw[:size]...)
		}
		raw = raw[size:]
	}
	return valid
}

// HoneypotFields are hidden inputs that people never fill in.
var HoneypotFields = []string{"website", "companyWebsite", "hp"}

type Honeypot []string

func HoneypotFrom(body RequestBody) Honeypot {
	values := make(Honeypot, 0, len(HoneypotFields))
	for _, field := range HoneypotFields {
		values = append(values, body.String(field))
	}
	return values
}

// Tripped reports whether any trap field carries a value.
func (h Honeypot) Tripped() bool {
	for _, value := range h {
		if value != "" {
			return true
		}
	}
	return false
}
