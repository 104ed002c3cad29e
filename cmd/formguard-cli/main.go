package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-formguard/pkg/definition"
	"github.com/goliatone/go-formguard/pkg/form"
	"github.com/goliatone/go-formguard/pkg/openapi"
	"github.com/goliatone/go-formguard/pkg/runner"
)

func main() {
	source := flag.String("source", "form.yaml", "form definition path (YAML/JSON) or OpenAPI document")
	operation := flag.String("operation", "", "operation ID when the source is an OpenAPI document")
	output := flag.String("output", "", "output file for the collected values (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	doc, err := loadDefinition(ctx, *source, *operation)
	if err != nil {
		log.Fatalf("Failed to load form definition: %v", err)
	}

	run := runner.New(runner.WithNotifier(form.NotifierFunc(func(level form.Level, msg string) {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", level, msg)
	})))

	values, err := run.Run(ctx, doc, nil)
	if err != nil {
		log.Fatalf("Form run failed: %v", err)
	}

	payload, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode values: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Values written to %s\n", *output)
	} else {
		fmt.Println(string(payload))
	}
}

func loadDefinition(ctx context.Context, path, operation string) (definition.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return definition.Document{}, err
	}

	if operation != "" {
		return definitionFromOpenAPI(ctx, raw, operation)
	}
	return definition.Parse(raw)
}

// definitionFromOpenAPI flattens a derived rule set back into a definition
// document so the runner has one input shape.
func definitionFromOpenAPI(ctx context.Context, raw []byte, operation string) (definition.Document, error) {
	set, err := openapi.RulesFromDocument(ctx, raw, operation)
	if err != nil {
		return definition.Document{}, err
	}

	doc := definition.Document{Form: operation}
	for _, name := range set.Names() {
		rule, ok := set.Rule(name)
		if !ok {
			continue
		}
		f := definition.Field{
			Name:      name,
			Label:     set.Label(name),
			Required:  rule.Required,
			MinLength: rule.MinLength,
			MaxLength: rule.MaxLength,
			Email:     rule.Email,
			URL:       rule.URL,
			Min:       rule.Min,
			Max:       rule.Max,
		}
		if rule.Pattern != nil {
			f.Pattern = rule.Pattern.String()
		}
		if rule.URL {
			f.Kind = "url"
		} else if rule.Min != nil || rule.Max != nil {
			f.Kind = "number"
		}
		doc.Fields = append(doc.Fields, f)
	}
	if len(doc.Fields) == 0 {
		return definition.Document{}, fmt.Errorf("operation %q has no usable request fields", operation)
	}
	return doc, nil
}
