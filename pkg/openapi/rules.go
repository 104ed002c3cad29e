package openapi

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formguard/pkg/rules"
)

// RulesFromDocument loads an OpenAPI 3 document and derives the rule set for
// the request body of the operation identified by operationID. Only the
// application/json content schema is considered.
func RulesFromDocument(ctx context.Context, raw []byte, operationID string) (*rules.Set, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}

	schema, err := requestSchema(spec, operationID)
	if err != nil {
		return nil, err
	}
	return RulesFromSchema(schema)
}

// RulesFromSchema derives a rule set from an object schema: one rule per
// property, carrying the schema's length, pattern, format and numeric bound
// constraints. Property order follows the schema's sorted property names so
// repeated derivations stay deterministic.
func RulesFromSchema(schema *openapi3.Schema) (*rules.Set, error) {
	set := rules.NewSet()
	if schema == nil {
		return set, nil
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		rule, err := propertyRule(name, ref.Value, required[name])
		if err != nil {
			return nil, err
		}
		if label := ref.Value.Title; label != "" {
			set.AddLabeled(name, label, rule)
		} else {
			set.Add(name, rule)
		}
	}
	return set, nil
}

func propertyRule(name string, src *openapi3.Schema, required bool) (rules.Rule, error) {
	rule := rules.Rule{Required: required}

	if src.MinLength != 0 {
		rule.MinLength = int(src.MinLength)
	}
	if src.MaxLength != nil {
		rule.MaxLength = int(*src.MaxLength)
	}
	if src.Pattern != "" {
		compiled, err := regexp.Compile(src.Pattern)
		if err != nil {
			return rules.Rule{}, fmt.Errorf("openapi: property %q pattern: %w", name, err)
		}
		rule.Pattern = compiled
	}
	switch src.Format {
	case "email":
		rule.Email = true
	case "uri", "url":
		rule.URL = true
	}
	if src.Min != nil {
		value := *src.Min
		rule.Min = &value
	}
	if src.Max != nil {
		value := *src.Max
		rule.Max = &value
	}
	return rule, nil
}

func requestSchema(spec *openapi3.T, operationID string) (*openapi3.Schema, error) {
	if spec.Paths == nil {
		return nil, errors.New("openapi: document does not contain any paths")
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation == nil || operation.OperationID != operationID {
				continue
			}
			if operation.RequestBody == nil || operation.RequestBody.Value == nil {
				return nil, fmt.Errorf("openapi: operation %q has no request body", operationID)
			}
			media := operation.RequestBody.Value.Content.Get("application/json")
			if media == nil || media.Schema == nil || media.Schema.Value == nil {
				return nil, fmt.Errorf("openapi: operation %q has no application/json schema", operationID)
			}
			return media.Schema.Value, nil
		}
	}
	return nil, fmt.Errorf("openapi: operation %q not found", operationID)
}
