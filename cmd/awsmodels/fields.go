package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/registry"
)

// ErrInvalidField indicates a field not in the KEY=VALUE form.
var ErrInvalidField = errors.New("awsmodels: expected KEY=VALUE")

// parseFields parses KEY=VALUE pairs. Repeating a key appends to a
// list, so "-f Resources=a -f Resources=b" sets two resources.
func parseFields(pairs []string) (map[string]any, error) {
	fields := make(map[string]any)
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidField, pair)
		}
		switch prev := fields[key].(type) {
		case nil:
			fields[key] = value
		case string:
			fields[key] = []any{prev, value}
		case []any:
			fields[key] = append(prev, value)
		}
	}
	return fields, nil
}

// newRequest creates the request of the named operation and fills it
// with the given KEY=VALUE pairs.
func newRequest(name string, pairs []string) (*registry.Factory, awsapi.Request, error) {
	factory, err := registry.NewFactory(name)
	if err != nil {
		return nil, nil, err
	}
	fields, err := parseFields(pairs)
	if err != nil {
		return nil, nil, err
	}
	req := factory.NewRequest()
	if err := factory.SetFieldsAny(req, fields); err != nil {
		return nil, nil, err
	}
	return factory, req, nil
}
