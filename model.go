package bunsetsu

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
)

//go:embed data/ja.json
var modelFS embed.FS

// defaultModelName is the embedded phrase model shipped with the library.
const defaultModelName = "data/ja.json"

var (
	// ErrNoModel is returned when a model resource is missing or empty.
	ErrNoModel = errors.New("no model data")

	// ErrCorruptModel is returned when a model resource exists but cannot
	// be decoded into a usable weight table.
	ErrCorruptModel = errors.New("corrupt model")
)

// Model is an offline-trained linear scorer: a table of feature weights plus
// the bias every candidate score starts from. A model is immutable once
// built and safe for concurrent readers.
type Model struct {
	name    string
	scheme  Scheme
	bias    int32
	weights map[string]int32
}

// LoadModel reads a model resource from fsys and unmarshals it.
func LoadModel(fsys fs.FS, name string) (*Model, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoModel, err)
	}
	return UnmarshalModel(data)
}

// UnmarshalModel decodes a JSON model resource of the form:
//
//	{
//	  "name": "ja-phrase",
//	  "scheme": "ngram/2",
//	  "bias": -1200,
//	  "weights": {"UW3:は": 3000, "BB2:062071": 300}
//	}
//
// The scheme must name a registered key scheme and every weight must fit a
// signed 32 bit integer. Duplicate weight keys are rejected when their
// values conflict. Decoding walks the raw token stream because the stock
// unmarshaler silently keeps the last duplicate.
func UnmarshalModel(data []byte) (*Model, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty resource", ErrNoModel)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	m := &Model{weights: make(map[string]int32)}
	var schemeName string
	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptModel, err)
		}
		switch key {
		case "name":
			if m.name, err = stringToken(dec); err != nil {
				return nil, fmt.Errorf("%w: name: %v", ErrCorruptModel, err)
			}
		case "scheme":
			if schemeName, err = stringToken(dec); err != nil {
				return nil, fmt.Errorf("%w: scheme: %v", ErrCorruptModel, err)
			}
		case "bias":
			if m.bias, err = int32Token(dec); err != nil {
				return nil, fmt.Errorf("%w: bias: %v", ErrCorruptModel, err)
			}
		case "weights":
			if err = decodeWeights(dec, m.weights); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: unknown field %q", ErrCorruptModel, key)
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptModel, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after model object", ErrCorruptModel)
	}

	if schemeName == "" {
		return nil, fmt.Errorf("%w: missing scheme", ErrCorruptModel)
	}
	sc, ok := schemeByName(schemeName)
	if !ok {
		return nil, fmt.Errorf("%w: unknown scheme %q", ErrCorruptModel, schemeName)
	}
	if len(m.weights) == 0 {
		return nil, fmt.Errorf("%w: empty weight table", ErrCorruptModel)
	}
	m.scheme = sc
	return m, nil
}

func decodeWeights(dec *json.Decoder, weights map[string]int32) error {
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCorruptModel, err)
		}
		wt, err := int32Token(dec)
		if err != nil {
			return fmt.Errorf("%w: weight %q: %v", ErrCorruptModel, key, err)
		}
		if prev, ok := weights[key]; ok && prev != wt {
			return fmt.Errorf("%w: conflicting duplicate key %q", ErrCorruptModel, key)
		}
		weights[key] = wt
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptModel, err)
	}
	return nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptModel, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: expected %q, got %v", ErrCorruptModel, want, tok)
	}
	return nil
}

func stringToken(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %v", tok)
	}
	return s, nil
}

func int32Token(dec *json.Decoder) (int32, error) {
	tok, err := dec.Token()
	if err != nil {
		return 0, err
	}
	num, ok := tok.(json.Number)
	if !ok {
		return 0, fmt.Errorf("expected integer, got %v", tok)
	}
	v, err := strconv.ParseInt(num.String(), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("value %s does not fit int32", num)
	}
	return int32(v), nil
}

// Lookup returns the weight of a feature key, or zero when the model does
// not carry the key.
func (m *Model) Lookup(key string) int32 {
	return m.weights[key]
}

// Bias returns the signed offset every candidate score starts from.
func (m *Model) Bias() int32 {
	return m.bias
}

// Name returns the model's declared name, which may be empty.
func (m *Model) Name() string {
	return m.name
}

// Scheme returns the feature key scheme the model was trained with.
func (m *Model) Scheme() Scheme {
	return m.scheme
}

// Len returns the number of feature keys the model carries.
func (m *Model) Len() int {
	return len(m.weights)
}
