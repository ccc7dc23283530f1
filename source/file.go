package source

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/philipjlin/TeamMatching/types"
)

// Format identifies the encoding of a dataset file.
type Format int

const (
	// FormatText is the line-oriented "Team ..." / "Player ..." format.
	FormatText Format = iota
	// FormatYAML is a YAML document shaped like types.Dataset.
	FormatYAML
	// FormatJSON is a JSON document shaped like types.Dataset.
	FormatJSON
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

const zstdSuffix = ".zst"

//go:embed schema/dataset.schema.json
var datasetSchemaJSON string

const datasetSchemaURL = "https://github.com/philipjlin/TeamMatching/schema/dataset.schema.json"

var (
	datasetSchemaOnce sync.Once
	datasetSchema     *jsonschema.Schema
	datasetSchemaErr  error
)

// File implements a data source reading a dataset file on every Load.
type File struct {
	path       string
	format     Format
	compressed bool
}

var _ types.DataSource = (*File)(nil)

// NewFile creates a file data source.
//
// The format is chosen by extension: .txt (or no extension) for the text
// format, .yaml/.yml for YAML and .json for JSON. A trailing .zst is
// decompressed with zstd before parsing, e.g. "league.json.zst".
//
// Parameters:
//   - path: Dataset file path
//
// Returns:
//   - *File: Initialized file source
//   - error: types.ErrUnknownFormat for unsupported extensions
//
// Example:
//
//	src, err := source.NewFile("testdata/league.yaml")
//	if err != nil { /* handle */ }
//	matcher, err := teammatching.NewMatcher(&cfg, src)
func NewFile(path string) (*File, error) {
	format, compressed, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	return &File{path: path, format: format, compressed: compressed}, nil
}

// DetectFormat returns the dataset format implied by a file name and whether
// the file is zstd-compressed.
func DetectFormat(path string) (Format, bool, error) {
	name := strings.ToLower(filepath.Base(path))
	compressed := strings.HasSuffix(name, zstdSuffix)
	name = strings.TrimSuffix(name, zstdSuffix)

	switch filepath.Ext(name) {
	case ".txt", "":
		return FormatText, compressed, nil
	case ".yaml", ".yml":
		return FormatYAML, compressed, nil
	case ".json":
		return FormatJSON, compressed, nil
	default:
		return 0, false, fmt.Errorf("%w: %q", types.ErrUnknownFormat, path)
	}
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// Format returns the detected format.
func (f *File) Format() Format {
	return f.format
}

// Load reads and parses the file.
//
// Parameters:
//   - ctx: Context checked before reading
//
// Returns:
//   - *types.Dataset: Parsed players and teams
//   - error: I/O, decompression, or parse error
func (f *File) Load(ctx context.Context) (*types.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	if f.compressed {
		data, err = decompress(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress %s: %w", f.path, err)
		}
	}

	ds, err := Parse(data, f.format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.path, err)
	}

	return ds, nil
}

// Parse decodes a dataset in the given format.
//
// Parameters:
//   - data: Raw, uncompressed file contents
//   - format: Encoding of data
//
// Returns:
//   - *types.Dataset: Parsed players and teams
//   - error: Wrapped types.ErrInvalidInput on malformed input
func Parse(data []byte, format Format) (*types.Dataset, error) {
	switch format {
	case FormatText:
		return ParseText(bytes.NewReader(data))
	case FormatYAML:
		return parseYAML(data)
	case FormatJSON:
		return parseJSON(data)
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnknownFormat, format)
	}
}

func parseYAML(data []byte) (*types.Dataset, error) {
	var ds types.Dataset

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: yaml: %v", types.ErrInvalidInput, err)
	}

	return &ds, nil
}

func parseJSON(data []byte) (*types.Dataset, error) {
	schema, err := compiledSchema()
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: json: %v", types.ErrInvalidInput, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidInput, err)
	}

	var ds types.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("%w: json: %v", types.ErrInvalidInput, err)
	}

	return &ds, nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	datasetSchemaOnce.Do(func() {
		datasetSchema, datasetSchemaErr = jsonschema.CompileString(datasetSchemaURL, datasetSchemaJSON)
	})
	if datasetSchemaErr != nil {
		return nil, fmt.Errorf("compiling dataset schema: %w", datasetSchemaErr)
	}

	return datasetSchema, nil
}

func decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	return dec.DecodeAll(data, nil)
}
