package styles

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/shiftreport/pkg/errors"
)

// Load reads a TOML style file and applies it over [Default]. Keys left out of
// the file keep their default values. Unknown keys are rejected so that typos
// do not silently fall back to defaults.
func Load(path string) (Style, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Style{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "style file %s", path)
		}
		return Style{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "open style file %s", path)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a TOML style document from r and applies it over [Default].
func Decode(r io.Reader) (Style, error) {
	s := Default()
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return Style{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "decode style")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Style{}, errors.New(errors.ErrCodeInvalidStyle, "unknown style keys: %s", strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}
