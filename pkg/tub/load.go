package tub

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/fitlab/tubfit/pkg/errors"
)

// ReadJSON decodes a single spec from r.
//
// The input must be a JSON object with the four record fields:
//
//	{"name": "Stokke Flexi", "widthCm": 25, "heightCm": 50, "cornerRadiusPercent": 12}
//
// The decoded spec is validated before it is returned. ReadJSON does not
// close r.
func ReadJSON(r io.Reader) (Spec, error) {
	var s Spec
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Spec{}, fmt.Errorf("decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// ReadTOML decodes a single spec from TOML data. Unknown keys are
// rejected, matching the strict JSON decoder, so a typoed field name fails
// loudly instead of leaving a zero value for validation to trip over.
func ReadTOML(data []byte) (Spec, error) {
	var s Spec
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return Spec{}, fmt.Errorf("decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Spec{}, errors.New(errors.ErrCodeInvalidSpec, "unknown key %q", undecoded[0].String())
	}
	if err := s.Validate(); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// Load reads one spec file, dispatching on the file extension: .toml is
// parsed as TOML, everything else as JSON. The returned error wraps the
// underlying cause with the file path for context; a missing file yields a
// FILE_NOT_FOUND coded error.
func Load(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Spec{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "spec file %s", path)
	}
	if err != nil {
		return Spec{}, fmt.Errorf("read %s: %w", path, err)
	}

	var s Spec
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		s, err = ReadTOML(data)
	} else {
		s, err = ReadJSON(bytes.NewReader(data))
	}
	if err != nil {
		return Spec{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
