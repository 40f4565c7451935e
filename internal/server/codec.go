package server

import (
	"bytes"
	"encoding/json"
	"fmt"

	"connectrpc.com/connect"
)

// jsonCodec serves plain Go structs over connect. It replaces the built-in
// "json" codec, which only accepts protobuf messages.
type jsonCodec struct{}

func (jsonCodec) Name() string {
	return "json"
}

func (jsonCodec) Marshal(message any) ([]byte, error) {
	data, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("server: marshal %T: %w", message, err)
	}
	return data, nil
}

// Unmarshal rejects unknown fields, matching how request documents are
// decoded from files and URLs.
func (jsonCodec) Unmarshal(data []byte, message any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(message); err != nil {
		return fmt.Errorf("server: unmarshal %T: %w", message, err)
	}
	if dec.More() {
		return fmt.Errorf("server: unmarshal %T: trailing data", message)
	}
	return nil
}

// Codec returns the codec used by the chart service, for clients.
func Codec() connect.Codec {
	return jsonCodec{}
}
