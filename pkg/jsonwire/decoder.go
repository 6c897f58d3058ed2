package jsonwire

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rawbytedev/arraywire"
)

// Deserializer reads JSON arrays from r.
type Deserializer struct {
	dec *json.Decoder
}

func NewDeserializer(r io.Reader) *Deserializer {
	return &Deserializer{dec: json.NewDecoder(r)}
}

// DeserializeTuple consumes the opening bracket. Elements stream lazily;
// the declared n is not trusted and not checked here.
func (d *Deserializer) DeserializeTuple(_ int) (arraywire.SeqSource, error) {
	tok, err := d.dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("jsonwire: expected array start, got %v", tok)
	}
	return &source{dec: d.dec}, nil
}

type source struct {
	dec  *json.Decoder
	done bool
}

func (s *source) Next(v any) (bool, error) {
	if s.done {
		return false, nil
	}
	if !s.dec.More() {
		if _, err := s.dec.Token(); err != nil { // closing bracket
			return false, err
		}
		s.done = true
		return false, nil
	}
	if err := s.dec.Decode(v); err != nil {
		return false, err
	}
	return true, nil
}
