package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadData reads a JSON file holding an array of Data objects and returns
// the records in file order. Either every element is converted or an error
// is returned; no partial result is produced.
func LoadData(path string) ([]Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	records, err := DecodeData(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	slog.Debug("dataset loaded", "path", path, "records", len(records))
	return records, nil
}

// DecodeData reads a JSON array of Data objects from r.
func DecodeData(r io.Reader) ([]Data, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	var elems []json.RawMessage
	if err := decodeSingleJSON(raw, &elems); err != nil {
		return nil, err
	}
	if elems == nil {
		// Top-level null.
		return nil, fmt.Errorf("%w: top-level value is not an array", ErrParse)
	}

	records := make([]Data, 0, len(elems))
	for i, e := range elems {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(e, &obj); err != nil || obj == nil {
			return nil, &ElementError{
				Index: i,
				Err:   fmt.Errorf("%w: element is not an object", ErrFieldType),
			}
		}
		d, err := DataFromMap(obj)
		if err != nil {
			return nil, &ElementError{Index: i, Err: err}
		}
		records = append(records, d)
	}
	return records, nil
}

// decodeSingleJSON decodes exactly one JSON value from data into v.
func decodeSingleJSON(data []byte, v any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("%w: trailing data after top-level value", ErrParse)
	}
	return nil
}

// LoadCategories reads a list of category configs from a YAML file, or from
// a JSON file when the extension is .json. Labels must be unique.
func LoadCategories(path string) ([]CategoryConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading categories: %w", err)
	}

	var entries []map[string]any
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = decodeSingleJSON(data, &entries)
	} else {
		err = decodeSingleYAML(data, &entries)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	var set CategorySet
	configs := make([]CategoryConfig, 0, len(entries))
	for i, entry := range entries {
		c, err := CategoryConfigFromMap(entry)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, &ElementError{Index: i, Err: err})
		}
		if !set.Add(c) {
			return nil, fmt.Errorf("loading %s: %w", path, &ElementError{
				Index: i,
				Err:   fmt.Errorf("%w: %q", ErrDuplicateCategory, c.Label()),
			})
		}
		configs = append(configs, c)
	}

	slog.Debug("categories loaded", "path", path, "categories", len(configs))
	return configs, nil
}

func decodeSingleYAML(data []byte, v any) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(v); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("%w: multiple YAML documents are not supported", ErrParse)
	}
	return nil
}
