package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// BodyHandler turns a structured request payload into wire bytes plus the
// headers that encoding needs. Exactly two implementations exist: JSON and
// form-urlencoded, selected explicitly by each call site.
type BodyHandler interface {
	// Body returns the serialized request bytes.
	Body() ([]byte, error)

	// Headers returns the header contributions of the encoding.
	Headers() map[string]string

	// Payload returns the original structured payload, preserved verbatim
	// for the response envelope.
	Payload() interface{}
}

type jsonBody struct {
	payload interface{}
	encoded []byte
	err     error
}

// JSONBody returns a handler that serializes payload as a UTF-8 JSON
// document. Top-level object fields whose value is null, an empty string,
// or an empty collection are dropped before serialization. The filter is
// shallow on purpose: a non-empty nested object is kept verbatim, including
// its own empty fields. Many call sites depend on nested empty fields
// surviving serialization.
func JSONBody(payload interface{}) BodyHandler {
	handler := &jsonBody{payload: payload}

	data, err := json.Marshal(payload)
	if err != nil {
		handler.err = fmt.Errorf("marshaling request body: %w", err)

		return handler
	}

	handler.encoded = filterTopLevelEmpty(data)

	return handler
}

func (h *jsonBody) Body() ([]byte, error) {
	return h.encoded, h.err
}

func (h *jsonBody) Headers() map[string]string {
	return map[string]string{
		"Content-Type":   "application/json",
		"Content-Length": strconv.Itoa(len(h.encoded)),
	}
}

func (h *jsonBody) Payload() interface{} {
	return h.payload
}

// filterTopLevelEmpty removes empty top-level entries from a serialized
// JSON object. Non-object documents pass through untouched.
func filterTopLevelEmpty(data []byte) []byte {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return data
	}

	for name, raw := range fields {
		switch string(bytes.TrimSpace(raw)) {
		case "null", `""`, "[]", "{}":
			delete(fields, name)
		}
	}

	filtered, err := json.Marshal(fields)
	if err != nil {
		return data
	}

	return filtered
}

type formBody struct {
	values url.Values
}

// FormBody returns a handler that serializes values as
// application/x-www-form-urlencoded, used by the OAuth endpoints. Repeated
// values under one key keep their order on the wire.
func FormBody(values url.Values) BodyHandler {
	return &formBody{values: values}
}

func (h *formBody) Body() ([]byte, error) {
	return []byte(h.values.Encode()), nil
}

func (h *formBody) Headers() map[string]string {
	return map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	}
}

func (h *formBody) Payload() interface{} {
	return h.values
}
