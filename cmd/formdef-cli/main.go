package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-formdef/pkg/answerschema"
	"github.com/goliatone/go-formdef/pkg/draftschema"
	"github.com/goliatone/go-formdef/pkg/model"
	"github.com/goliatone/go-formdef/pkg/preview"
	"github.com/goliatone/go-formdef/pkg/validation"
)

func main() {
	source := flag.String("source", "form.json", "definition document path (.json or .yaml)")
	mode := flag.String("mode", "normalize", "normalize | validate | answers | preview")
	title := flag.String("title", "", "form title used by validate/answers/preview output")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	raw, err := os.ReadFile(*source)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *source, err)
	}

	sections, err := parseSource(*source, raw)
	if err != nil {
		log.Fatalf("Failed to parse %s: %v", *source, err)
	}
	form := model.FormDefinition{Title: *title, Status: model.StatusDraft, Sections: sections}

	switch *mode {
	case "normalize":
		payload, err := draftschema.MarshalBytes(sections)
		if err != nil {
			log.Fatalf("Failed to serialize: %v", err)
		}
		emit(*output, payload)
	case "validate":
		result := validation.ValidateDefinition(&form)
		payload, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode result: %v", err)
		}
		emit(*output, payload)
		if !result.Valid {
			os.Exit(1)
		}
	case "answers":
		payload, err := answerschema.MarshalJSON(form)
		if err != nil {
			log.Fatalf("Failed to export answers schema: %v", err)
		}
		emit(*output, payload)
	case "preview":
		answers, err := preview.New().Run(context.Background(), form)
		if err != nil {
			log.Fatalf("Preview failed: %v", err)
		}
		payload, err := json.MarshalIndent(answers, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode answers: %v", err)
		}
		emit(*output, payload)
	default:
		log.Fatalf("Unknown mode %q", *mode)
	}
}

func parseSource(path string, raw []byte) ([]model.FormSection, error) {
	lowered := strings.ToLower(path)
	if strings.HasSuffix(lowered, ".yaml") || strings.HasSuffix(lowered, ".yml") {
		return draftschema.ParseYAML(raw)
	}
	return draftschema.ParseBytes(raw)
}

func emit(output string, payload []byte) {
	if output == "" {
		fmt.Println(string(payload))
		return
	}
	if err := os.WriteFile(output, payload, 0o644); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	fmt.Printf("Written to %s\n", output)
}
