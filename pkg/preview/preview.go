// Package preview walks a canonical form definition as a sequence of
// terminal prompts so a definition can be exercised end to end before a
// version is published.
package preview

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-formdef/pkg/model"
	"github.com/goliatone/go-formdef/pkg/visibility"
)

// Runner drives one walkthrough of a definition.
type Runner struct {
	driver    PromptDriver
	evaluator visibility.Evaluator
}

// Option configures a Runner.
type Option func(*Runner)

// WithDriver swaps the prompt driver, typically for a scripted one in tests.
func WithDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithEvaluator supplies the rule-evaluation collaborator. Without one,
// every field is prompted and conditional requiredness is ignored.
func WithEvaluator(evaluator visibility.Evaluator) Option {
	return func(r *Runner) {
		r.evaluator = evaluator
	}
}

// New builds a Runner, defaulting to the interactive survey driver.
func New(opts ...Option) *Runner {
	runner := &Runner{driver: NewSurveyDriver()}
	for _, opt := range opts {
		opt(runner)
	}
	return runner
}

// Run prompts through every visible field and returns the collected answers
// keyed by field key.
func (r *Runner) Run(ctx context.Context, form model.FormDefinition) (map[string]any, error) {
	if r.driver == nil {
		return nil, errors.New("preview: no prompt driver configured")
	}

	answers := make(map[string]any)
	for _, section := range form.Sections {
		if err := r.announceSection(ctx, section); err != nil {
			return nil, err
		}
		for _, field := range section.Fields {
			visible, err := r.decide(field.Key, groupOf(field, true), answers, true)
			if err != nil {
				return nil, err
			}
			if !visible {
				continue
			}
			required := field.Required
			if !required {
				required, err = r.decide(field.Key, groupOf(field, false), answers, false)
				if err != nil {
					return nil, err
				}
			}
			if err := r.promptField(ctx, field, required, answers); err != nil {
				return nil, err
			}
		}
	}
	return answers, nil
}

func groupOf(field model.FormField, show bool) *model.ConditionGroup {
	if field.Logic == nil {
		return nil
	}
	if show {
		return field.Logic.ShowWhen
	}
	return field.Logic.RequireWhen
}

// decide consults the evaluator for a group; fields without a group keep
// their unconditional behavior (visible, not conditionally required).
func (r *Runner) decide(fieldKey string, group *model.ConditionGroup, answers map[string]any, fallback bool) (bool, error) {
	if group.Empty() || r.evaluator == nil {
		return fallback, nil
	}
	ok, err := r.evaluator.Eval(fieldKey, group, visibility.Context{Values: answers})
	if err != nil {
		return false, fmt.Errorf("preview: evaluate logic for %q: %w", fieldKey, err)
	}
	return ok, nil
}

func (r *Runner) announceSection(ctx context.Context, section model.FormSection) error {
	title := strings.TrimSpace(section.Title)
	if title == "" {
		title = section.ID
	}
	if err := r.driver.Info(ctx, "== "+title); err != nil {
		return err
	}
	if section.Description != "" {
		return r.driver.Info(ctx, section.Description)
	}
	return nil
}

func (r *Runner) promptField(ctx context.Context, field model.FormField, required bool, answers map[string]any) error {
	label := field.Label
	if label == "" {
		label = field.Key
	}

	switch field.Type {
	case model.FieldTypeInfoText:
		if err := r.driver.Info(ctx, label); err != nil {
			return err
		}
		if field.Description != "" {
			return r.driver.Info(ctx, field.Description)
		}
		return nil
	case model.FieldTypeLongText:
		value, err := r.driver.TextArea(ctx, TextAreaConfig{Message: label, Help: field.Description})
		if err != nil {
			return err
		}
		answers[field.Key] = value
		return nil
	case model.FieldTypeCheckbox:
		value, err := r.driver.Confirm(ctx, ConfirmConfig{Message: label, Help: field.Description})
		if err != nil {
			return err
		}
		answers[field.Key] = value
		return nil
	case model.FieldTypeSingleSelect:
		idx, err := r.driver.Select(ctx, SelectConfig{Message: label, Options: optionLabels(field.Options), Help: field.Description})
		if err != nil {
			return err
		}
		if idx >= 0 && idx < len(field.Options) {
			answers[field.Key] = field.Options[idx].Value
		}
		return nil
	case model.FieldTypeMultiSelect:
		indices, err := r.driver.MultiSelect(ctx, SelectConfig{Message: label, Options: optionLabels(field.Options), Help: field.Description})
		if err != nil {
			return err
		}
		values := make([]string, 0, len(indices))
		for _, idx := range indices {
			if idx >= 0 && idx < len(field.Options) {
				values = append(values, field.Options[idx].Value)
			}
		}
		answers[field.Key] = values
		return nil
	case model.FieldTypeNumber:
		value, err := r.driver.Input(ctx, InputConfig{
			Message:   label,
			Help:      field.Description,
			Validator: numberValidator(field.Validation, required),
		})
		if err != nil {
			return err
		}
		if strings.TrimSpace(value) == "" {
			return nil
		}
		number, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err == nil {
			answers[field.Key] = number
		}
		return nil
	default:
		value, err := r.driver.Input(ctx, InputConfig{
			Message:     label,
			Help:        field.Description,
			Placeholder: field.Placeholder,
			Validator:   textValidator(field, required),
		})
		if err != nil {
			return err
		}
		if value != "" {
			answers[field.Key] = value
		}
		return nil
	}
}

func optionLabels(options []model.Option) []string {
	labels := make([]string, 0, len(options))
	for _, option := range options {
		label := option.Label
		if label == "" {
			label = option.Value
		}
		labels = append(labels, label)
	}
	return labels
}

func textValidator(field model.FormField, required bool) func(string) error {
	var pattern *regexp.Regexp
	if field.Validation != nil && field.Validation.Pattern != "" {
		// Bad patterns are a validation-pass concern, not a preview crash.
		pattern, _ = regexp.Compile(field.Validation.Pattern)
	}
	return func(value string) error {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			if required {
				return errors.New("an answer is required")
			}
			return nil
		}
		if field.Validation != nil {
			if field.Validation.Min != nil && float64(len(trimmed)) < *field.Validation.Min {
				return fmt.Errorf("needs at least %d characters", int(*field.Validation.Min))
			}
			if field.Validation.Max != nil && float64(len(trimmed)) > *field.Validation.Max {
				return fmt.Errorf("needs at most %d characters", int(*field.Validation.Max))
			}
		}
		if pattern != nil && !pattern.MatchString(trimmed) {
			return errors.New("does not match the expected format")
		}
		if field.Type == model.FieldTypeDate {
			if _, err := time.Parse("2006-01-02", trimmed); err != nil {
				return errors.New("expected a date like 2006-01-02")
			}
		}
		return nil
	}
}

func numberValidator(validation *model.Validation, required bool) func(string) error {
	return func(value string) error {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			if required {
				return errors.New("an answer is required")
			}
			return nil
		}
		number, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return errors.New("expected a number")
		}
		if validation != nil {
			if validation.Min != nil && number < *validation.Min {
				return fmt.Errorf("must be at least %v", *validation.Min)
			}
			if validation.Max != nil && number > *validation.Max {
				return fmt.Errorf("must be at most %v", *validation.Max)
			}
		}
		return nil
	}
}
