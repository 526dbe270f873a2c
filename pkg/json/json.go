// Package json is the one jsoniter façade the codebase goes through, so
// encoder configuration lives in a single place.
package json

import jsoniter "github.com/json-iterator/go"

var (
	// JSON is the jsoniter.API instance used throughout the codebase
	JSON = jsoniter.ConfigCompatibleWithStandardLibrary

	// Marshal is a shorthand for JSON.Marshal
	Marshal = JSON.Marshal

	// MarshalToString is a shorthand for JSON.MarshalToString
	MarshalToString = JSON.MarshalToString

	// Unmarshal is a shorthand for JSON.Unmarshal
	Unmarshal = JSON.Unmarshal

	// NewDecoder is a shorthand for JSON.NewDecoder
	NewDecoder = JSON.NewDecoder

	// NewEncoder is a shorthand for JSON.NewEncoder
	NewEncoder = JSON.NewEncoder
)
