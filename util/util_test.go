package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
	"go.mongodb.org/mongo-driver/bson"
)

type sample struct {
	Name  string `bson:"name" json:"name" yaml:"name"`
	Count int    `bson:"count" json:"count" yaml:"count"`
}

func TestDefault(t *testing.T) {
	check.Equal(t, Default("", "fallback"), "fallback")
	check.Equal(t, Default("set", "fallback"), "set")
	check.Equal(t, Default(0, 55), 55)
	check.Equal(t, Default(3, 55), 3)
}

func TestUnmarshalFile(t *testing.T) {
	dir := t.TempDir()

	for name, body := range map[string][]byte{
		"conf.yaml": []byte("name: yaml\ncount: 3\n"),
		"conf.yml":  []byte("name: yaml\ncount: 3\n"),
		"conf.json": []byte(`{"name": "yaml", "count": 3}`),
		"conf.bson": func() []byte {
			out, err := bson.Marshal(sample{Name: "yaml", Count: 3})
			assert.NotError(t, err)
			return out
		}(),
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			assert.NotError(t, os.WriteFile(path, body, 0o600))

			out := sample{}
			assert.NotError(t, UnmarshalFile(path, &out))
			check.Equal(t, out, sample{Name: "yaml", Count: 3})
		})
	}

	t.Run("UnknownExtension", func(t *testing.T) {
		path := filepath.Join(dir, "conf.toml")
		assert.NotError(t, os.WriteFile(path, []byte("name = 1"), 0o600))
		assert.ErrorIs(t, UnmarshalFile(path, &sample{}), ErrUnsupportedFormat)
	})
	t.Run("Missing", func(t *testing.T) {
		assert.Error(t, UnmarshalFile(filepath.Join(dir, "absent.yaml"), &sample{}))
		assert.Error(t, UnmarshalFile("", &sample{}))
	})
	t.Run("Malformed", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		assert.NotError(t, os.WriteFile(path, []byte("{"), 0o600))
		assert.Error(t, UnmarshalFile(path, &sample{}))
	})
}

func TestPaths(t *testing.T) {
	check.Equal(t, TryExpandHomeDir("/tmp/x"), "/tmp/x")
	check.True(t, TryExpandHomeDir("~/x") != "~/x" || GetHomeDir() == "")
	check.True(t, FileExists(t.TempDir()))
	check.True(t, !FileExists(filepath.Join(t.TempDir(), "nope")))
}
