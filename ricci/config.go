package ricci

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	methodLoadSettings   = "LoadSettings"
	methodDecodeSettings = "DecodeSettings"
	methodEncodeSettings = "EncodeSettings"
)

// Format names a settings file encoding.
type Format string

// Supported settings formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath maps .yaml/.yml to FormatYAML and .toml to FormatTOML.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", ricciErrorf("FormatFromPath", ErrUnknownConfigFormat, "%q", path)
	}
}

// LoadSettings reads settings from a YAML or TOML file chosen by extension.
// Keys absent from the file keep their DefaultSettings value.
func LoadSettings(path string) (Settings, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Settings{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, ricciErrorf(methodLoadSettings, err, "open %s", path)
	}
	defer f.Close()

	return DecodeSettings(f, format)
}

// DecodeSettings decodes r on top of DefaultSettings. Unknown keys are
// rejected. The result is not validated; RicciFlow does that.
func DecodeSettings(r io.Reader, format Format) (Settings, error) {
	s := DefaultSettings()
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return Settings{}, ricciErrorf(methodDecodeSettings, err, "yaml")
		}
	case FormatTOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return Settings{}, ricciErrorf(methodDecodeSettings, err, "toml")
		}
	default:
		return Settings{}, ricciErrorf(methodDecodeSettings, ErrUnknownConfigFormat, "%q", string(format))
	}

	return s, nil
}

// EncodeSettings writes s to w in the given format.
func EncodeSettings(w io.Writer, format Format, s Settings) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return ricciErrorf(methodEncodeSettings, err, "yaml")
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(s); err != nil {
			return ricciErrorf(methodEncodeSettings, err, "toml")
		}
		return nil
	default:
		return ricciErrorf(methodEncodeSettings, ErrUnknownConfigFormat, "%q", string(format))
	}
}
