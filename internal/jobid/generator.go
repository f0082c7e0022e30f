// Package jobid issues job requirement identifiers of the form
// PREFIX-CODE-NNNN, e.g. DZ-DS-0001.
//
// The category code is derived from the job title by an ordered keyword
// classifier and the sequence is one past the highest number already issued
// in that category.
package jobid

import (
	"context"
	"fmt"
)

// Provider supplies the identifiers issued so far. Implementations may return
// every identifier or only those of the requested category.
type Provider interface {
	Identifiers(ctx context.Context, code Code) ([]string, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, code Code) ([]string, error)

func (f ProviderFunc) Identifiers(ctx context.Context, code Code) ([]string, error) {
	return f(ctx, code)
}

// StaticProvider serves a fixed identifier list.
type StaticProvider []string

func (p StaticProvider) Identifiers(context.Context, Code) ([]string, error) {
	return append([]string(nil), p...), nil
}

// Generator combines classification, allocation and formatting.
type Generator struct {
	prefix     string
	classifier *Classifier
	provider   Provider
}

func NewGenerator(prefix string, classifier *Classifier, provider Provider) (*Generator, error) {
	if err := ValidatePrefix(prefix); err != nil {
		return nil, err
	}
	if err := ValidateCode(classifier.Fallback()); err != nil {
		return nil, fmt.Errorf("fallback code: %w", err)
	}
	for _, r := range classifier.rules {
		if err := ValidateCode(r.Code); err != nil {
			return nil, fmt.Errorf("rule code: %w", err)
		}
	}

	return &Generator{
		prefix:     prefix,
		classifier: classifier,
		provider:   provider,
	}, nil
}

func (g *Generator) Prefix() string { return g.prefix }

func (g *Generator) Classifier() *Classifier { return g.classifier }

// Next reads the current identifiers from the provider and returns the next
// identifier for title. Provider errors are returned as is, wrapped.
func (g *Generator) Next(ctx context.Context, title string) (Identifier, error) {
	code := g.classifier.Classify(title)

	existing, err := g.provider.Identifiers(ctx, code)
	if err != nil {
		return Identifier{}, fmt.Errorf("reading existing identifiers for %s: %w", code, err)
	}

	return g.build(code, existing), nil
}

// Preview computes the identifier for title against an already loaded set.
func (g *Generator) Preview(title string, existing []string) Identifier {
	return g.build(g.classifier.Classify(title), existing)
}

func (g *Generator) build(code Code, existing []string) Identifier {
	return Identifier{
		Prefix:   g.prefix,
		Code:     code,
		Sequence: Allocate(code, existing),
	}
}
