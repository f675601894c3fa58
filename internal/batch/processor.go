// Package batch handles batch country resolution from line-oriented input.
package batch

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/hightemp/isocountry/internal/config"
	"github.com/hightemp/isocountry/internal/output"
	"github.com/hightemp/isocountry/pkg/country"
)

// Resolver resolves one input in a key space.
type Resolver interface {
	LookupIn(space country.Space, input string) (country.Match, error)
}

// Processor handles batch lookups.
type Processor struct {
	resolver    Resolver
	space       country.Space
	concurrency int
	logger      *logrus.Logger
}

// NewProcessor creates a new batch processor resolving in space with at
// most concurrency lookups in flight.
func NewProcessor(resolver Resolver, space country.Space, concurrency int, logger *logrus.Logger) *Processor {
	if concurrency < 1 {
		concurrency = config.DefaultConcurrency
	}
	return &Processor{
		resolver:    resolver,
		space:       space,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Resolve looks up a single input. Misses are reported in the result, not
// as an error.
func (p *Processor) Resolve(input string) *output.LookupResult {
	m, err := p.resolver.LookupIn(p.space, input)
	if err != nil {
		p.logger.WithFields(logrus.Fields{
			"input": input,
			"space": p.space.String(),
		}).Debug("lookup failed")
		return output.NewLookupResult(input, m, err)
	}

	if m.Deprecated() {
		p.logger.WithFields(logrus.Fields{
			"input":     input,
			"alias":     m.Alias.Text,
			"canonical": m.Country.Alpha2(),
			"note":      m.Alias.Note,
		}).Warn("deprecated country alias")
	}
	return output.NewLookupResult(input, m, nil)
}

// ResolveAll resolves inputs concurrently. Results keep input order. It
// stops early and returns the context error when ctx is cancelled.
func (p *Processor) ResolveAll(ctx context.Context, inputs []string) (*output.BatchResult, error) {
	results := make([]*output.LookupResult, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, input := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = p.Resolve(input)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The group context is always done after Wait; check the caller's.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.logger.WithFields(logrus.Fields{
		"inputs":      len(inputs),
		"concurrency": p.concurrency,
	}).Debug("batch resolved")
	return &output.BatchResult{Results: results}, nil
}

// ProcessInput reads inputs from r, one per line, and writes results to w
// in format. Blank lines are skipped.
func (p *Processor) ProcessInput(ctx context.Context, r io.Reader, w io.Writer, format string) (*output.BatchResult, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}

	batch, err := p.ResolveAll(ctx, lines)
	if err != nil {
		return nil, err
	}

	if err := output.Render(w, format, batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// ReadLines returns the trimmed non-blank lines of r.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
