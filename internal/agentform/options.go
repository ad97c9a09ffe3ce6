package agentform

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rohits-web03/voxdesk/internal/client"
	"golang.org/x/sync/errgroup"
)

type OptionsSource interface {
	ListLanguages(ctx context.Context) ([]client.Language, error)
	ListVoices(ctx context.Context) ([]client.Voice, error)
	ListPrompts(ctx context.Context) ([]client.Prompt, error)
	ListModels(ctx context.Context) ([]client.Model, error)
}

// Keys of Options.Errors.
const (
	OptionLanguages = "languages"
	OptionVoices    = "voices"
	OptionPrompts   = "prompts"
	OptionModels    = "models"
)

// Options holds the choices for the form's select fields. A list that
// failed to load is empty and has its error in Errors; the others are
// still usable.
type Options struct {
	Languages []client.Language
	Voices    []client.Voice
	Prompts   []client.Prompt
	Models    []client.Model
	Errors    map[string]error
}

// Err joins the per-list errors, or returns nil if every list loaded.
func (o *Options) Err() error {
	var errs []error
	for _, key := range []string{OptionLanguages, OptionVoices, OptionPrompts, OptionModels} {
		if err := o.Errors[key]; err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LoadOptions fetches all four option lists in parallel. Each list loads
// on its own; one failing leaves the others in place.
func LoadOptions(ctx context.Context, src OptionsSource) *Options {
	opts := &Options{Errors: map[string]error{}}
	var (
		g  errgroup.Group
		mu sync.Mutex
	)
	fail := func(key string, err error) {
		mu.Lock()
		opts.Errors[key] = fmt.Errorf("fetch %s: %w", key, err)
		mu.Unlock()
	}

	g.Go(func() error {
		list, err := src.ListLanguages(ctx)
		if err != nil {
			fail(OptionLanguages, err)
			return nil
		}
		opts.Languages = list
		return nil
	})
	g.Go(func() error {
		list, err := src.ListVoices(ctx)
		if err != nil {
			fail(OptionVoices, err)
			return nil
		}
		opts.Voices = list
		return nil
	})
	g.Go(func() error {
		list, err := src.ListPrompts(ctx)
		if err != nil {
			fail(OptionPrompts, err)
			return nil
		}
		opts.Prompts = list
		return nil
	})
	g.Go(func() error {
		list, err := src.ListModels(ctx)
		if err != nil {
			fail(OptionModels, err)
			return nil
		}
		opts.Models = list
		return nil
	})
	_ = g.Wait()
	return opts
}
