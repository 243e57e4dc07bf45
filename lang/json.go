package lang

import "encoding/json"

// marshalEnumName is the shared helper behind every enum's MarshalJSON in
// this package: encode as a plain JSON string.
func marshalEnumName(name string) ([]byte, error) {
	return json.Marshal(name)
}

// unmarshalEnumName is the shared helper behind every enum's UnmarshalJSON:
// decode a JSON string and hand it back to the caller for name lookup.
func unmarshalEnumName(data []byte) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", err
	}
	return s, nil
}
