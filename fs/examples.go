package fs

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/fwojciec/xwrap"
)

// ReadExamples reads training examples from a JSON file holding an array of
// {"url": ..., "targets": {field: value}} objects.
func ReadExamples(path string) ([]*xwrap.Example, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, xwrap.Errorf(xwrap.ENOTFOUND, "examples file %s not found", path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeExamples(f)
}

// DecodeExamples decodes and validates training examples from r.
func DecodeExamples(r io.Reader) ([]*xwrap.Example, error) {
	var examples []*xwrap.Example
	if err := json.NewDecoder(r).Decode(&examples); err != nil {
		return nil, xwrap.Errorf(xwrap.EINVALID, "invalid examples: %v", err)
	}
	if len(examples) == 0 {
		return nil, xwrap.Errorf(xwrap.EINVALID, "no examples")
	}
	for i, ex := range examples {
		if ex == nil {
			return nil, xwrap.Errorf(xwrap.EINVALID, "example %d is null", i)
		}
		if err := ex.Validate(); err != nil {
			return nil, err
		}
	}
	return examples, nil
}
