package api

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrNotJSON is returned by Result.Decode when the daemon answered with a
// body that is not JSON.
var ErrNotJSON = errors.New("response body is not JSON")

// Result is the outcome of a successful request. Exactly one of JSON and Raw
// is set: JSON holds a body that parsed as JSON, Raw holds anything else
// (including empty 204 bodies and binary payloads).
type Result struct {
	StatusCode int
	JSON       json.RawMessage
	Raw        []byte
}

// IsJSON reports whether the body was decoded as JSON.
func (r *Result) IsJSON() bool {
	return r.JSON != nil
}

// Decode unmarshals the JSON body into v.
func (r *Result) Decode(v interface{}) error {
	if !r.IsJSON() {
		return ErrNotJSON
	}
	return json.Unmarshal(r.JSON, v)
}

// Bytes returns the body as it was received, whichever arm holds it.
func (r *Result) Bytes() []byte {
	if r.IsJSON() {
		return r.JSON
	}
	return r.Raw
}

func newResult(statusCode int, body []byte, decode bool) *Result {
	res := &Result{StatusCode: statusCode}
	if decode && len(bytes.TrimSpace(body)) > 0 && json.Valid(body) {
		res.JSON = json.RawMessage(body)
		return res
	}
	if body == nil {
		body = []byte{}
	}
	res.Raw = body
	return res
}
