package question

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a quiz file. An empty path loads DefaultPath.
// Failures are returned as *LoadError.
func Load(path string) ([]Question, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Path: path, Kind: ErrNotFound, Err: err}
		}
		return nil, &LoadError{Path: path, Kind: ErrFormat, Err: fmt.Errorf("read quiz file: %w", err)}
	}
	questions, err := Parse(data, path)
	if err != nil {
		return nil, &LoadError{Path: path, Kind: ErrFormat, Err: err}
	}
	if len(questions) == 0 {
		return nil, &LoadError{Path: path, Kind: ErrEmpty}
	}
	return questions, nil
}

// Parse decodes quiz data and resolves every correctness marker. The path
// extension selects the decoder: .yml and .yaml use YAML, anything else JSON.
func Parse(data []byte, path string) ([]Question, error) {
	var raw rawQuizData
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		raw, err = parseYAML(data)
	default:
		raw, err = parseJSON(data)
	}
	if err != nil {
		return nil, err
	}
	if raw.Questions == nil {
		return nil, &ValidationError{Issues: []Issue{{Field: "questions", Message: "is required"}}}
	}
	return resolveQuestions(*raw.Questions)
}

func parseJSON(data []byte) (rawQuizData, error) {
	var raw rawQuizData
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&raw); err != nil {
		return rawQuizData{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return rawQuizData{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return rawQuizData{}, fmt.Errorf("parse json: %w", err)
	}
	return raw, nil
}

func parseYAML(data []byte) (rawQuizData, error) {
	var raw rawQuizData
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&raw); err != nil {
		if err == io.EOF {
			return rawQuizData{}, fmt.Errorf("parse yaml: empty document")
		}
		return rawQuizData{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return rawQuizData{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return rawQuizData{}, fmt.Errorf("parse yaml: %w", err)
	}
	return raw, nil
}
