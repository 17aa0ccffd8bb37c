package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadBank reads, parses, and validates a question bank file.
func LoadBank(path string) (Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bank{}, fmt.Errorf("read question bank: %w", err)
	}
	bank, err := parseBank(data, path)
	if err != nil {
		return Bank{}, err
	}
	normalized, err := NormalizeBank(bank)
	if err != nil {
		return Bank{}, err
	}
	return normalized, nil
}

func parseBank(data []byte, path string) (Bank, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yml" || ext == ".yaml" {
		return parseYAMLBank(data)
	}
	return parseJSONBank(data)
}

func parseJSONBank(data []byte) (Bank, error) {
	var bank Bank
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&bank); err != nil {
		return Bank{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Bank{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Bank{}, fmt.Errorf("parse json: %w", err)
	}
	return bank, nil
}

func parseYAMLBank(data []byte) (Bank, error) {
	var bank Bank
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&bank); err != nil {
		return Bank{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Bank{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Bank{}, fmt.Errorf("parse yaml: %w", err)
	}
	return bank, nil
}
