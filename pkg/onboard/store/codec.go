package store

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"howett.net/plist"
)

// Codec encodes a record to the bytes kept in a Defaults store.
type Codec interface {
	// Name is the codec name, also used as the file extension.
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// TOMLCodec encodes records as TOML documents.
type TOMLCodec struct{}

func (TOMLCodec) Name() string { return "toml" }

func (TOMLCodec) Marshal(v any) ([]byte, error) {
	return toml.Marshal(v)
}

func (TOMLCodec) Unmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}

// PlistCodec encodes records as property lists, the format platform
// defaults databases use. Binary is used when Binary is set, XML otherwise.
type PlistCodec struct {
	Binary bool
}

func (PlistCodec) Name() string { return "plist" }

func (c PlistCodec) Marshal(v any) ([]byte, error) {
	format := plist.XMLFormat
	if c.Binary {
		format = plist.BinaryFormat
	}
	return plist.Marshal(v, format)
}

func (PlistCodec) Unmarshal(data []byte, v any) error {
	_, err := plist.Unmarshal(data, v)
	return err
}

// ParseCodec returns the codec with the given name.
func ParseCodec(name string) (Codec, error) {
	switch name {
	case "", "toml":
		return TOMLCodec{}, nil
	case "plist":
		return PlistCodec{}, nil
	case "bplist":
		return PlistCodec{Binary: true}, nil
	default:
		return nil, fmt.Errorf("store: unknown codec %q", name)
	}
}
