// Package platform connects the environment to the host platform.
//
// Native code delivers system settings (locale, time zone, calendar, content
// size and appearance) over named channels. The [Settings] service parses
// them and pushes changed values onto the application's windows, where the
// env package propagates them down each window's hierarchy.
package platform

import "encoding/json"

// MessageCodec encodes and decodes channel payloads.
type MessageCodec interface {
	Encode(value any) ([]byte, error)
	Decode(data []byte) (any, error)
}

// JSONCodec implements MessageCodec with encoding/json.
type JSONCodec struct{}

// Encode serializes value to JSON.
func (JSONCodec) Encode(value any) ([]byte, error) {
	return json.Marshal(value)
}

// Decode parses JSON into maps, slices and scalars. Empty input decodes to
// nil.
func (JSONCodec) Decode(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var result any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DefaultCodec is the codec used by all channels.
var DefaultCodec MessageCodec = JSONCodec{}
