package util

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tychoish/fun/ers"
	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/yaml.v3"
)

const ErrUnsupportedFormat ers.Error = "unsupported file format"

type Unmarshaler func([]byte, any) error

// GetUnmarshaler picks a decoder from the file extension, returning nil
// for unknown extensions.
func GetUnmarshaler(fn string) Unmarshaler {
	switch filepath.Ext(fn) {
	case ".bson":
		return bson.Unmarshal
	case ".json":
		return json.Unmarshal
	case ".yaml", ".yml":
		return yaml.Unmarshal
	default:
		return nil
	}
}

func UnmarshalFile(fn string, out any) error {
	if fn == "" {
		return ers.New("file not specified")
	}

	unmarshal := GetUnmarshaler(fn)
	if unmarshal == nil {
		return ers.Wrapf(ErrUnsupportedFormat, "%q", fn)
	}

	data, err := os.ReadFile(fn)
	if err != nil {
		return ers.Wrapf(err, "reading %q", fn)
	}

	return ers.Wrapf(unmarshal(data, out), "decoding %q", fn)
}
