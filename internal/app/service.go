package app

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"vietkichban/internal/api"
	"vietkichban/internal/forms"
	"vietkichban/internal/model"
	"vietkichban/internal/storage"
	"vietkichban/pkg/config"
	"vietkichban/pkg/prompts"
)

type Service struct {
	cfg     *config.Config
	client  *api.Client
	prompts *prompts.Prompts
	saver   storage.Saver
	now     func() time.Time
}

type ServiceOptions struct {
	Config  *config.Config
	Client  *api.Client
	Prompts *prompts.Prompts
	Saver   storage.Saver
}

func NewService(opts ServiceOptions) *Service {
	p := opts.Prompts
	if p == nil {
		p = prompts.Default()
	}

	return &Service{
		cfg:     opts.Config,
		client:  opts.Client,
		prompts: p,
		saver:   opts.Saver,
		now:     time.Now,
	}
}

func (s *Service) Config() *config.Config {
	return s.cfg
}

func (s *Service) Client() *api.Client {
	return s.client
}

func (s *Service) Prompts() *prompts.Prompts {
	return s.prompts
}

func (s *Service) Saver() storage.Saver {
	return s.saver
}

// Handler binds an action to the given fields and output area.
func (s *Service) Handler(action model.Action, fields forms.Fields, output forms.Output) *forms.Handler {
	return forms.NewHandler(forms.HandlerOptions{
		Action:   action,
		Client:   s.client,
		Fields:   fields,
		Output:   output,
		Messages: s.prompts,
	})
}

// Defaults returns the configured initial field values for an action.
func (s *Service) Defaults(action model.Action) forms.Values {
	switch action {
	case model.ActionCreate:
		return forms.Values{
			forms.FieldProvider: s.cfg.Create.Provider,
			forms.FieldModel:    s.cfg.Create.Model,
			forms.FieldStyle:    s.cfg.Create.Style,
			forms.FieldLength:   strconv.Itoa(s.cfg.Create.LengthWords),
		}
	case model.ActionPodcast:
		return forms.Values{
			forms.FieldProvider:   s.cfg.Podcast.Provider,
			forms.FieldModel:      s.cfg.Podcast.Model,
			forms.FieldStyle:      s.cfg.Podcast.Style,
			forms.FieldCharacters: s.cfg.Podcast.Characters,
		}
	case model.ActionRewrite:
		return forms.Values{
			forms.FieldProvider: s.cfg.Rewrite.Provider,
			forms.FieldModel:    s.cfg.Rewrite.Model,
			forms.FieldTone:     s.cfg.Rewrite.Tone,
			forms.FieldTarget:   s.cfg.Rewrite.Target,
		}
	}
	return forms.Values{}
}

func (s *Service) Save(ctx context.Context, action model.Action, text string) (string, error) {
	if s.saver == nil {
		return "", fmt.Errorf("no storage configured")
	}
	return s.saver.Save(ctx, storage.FileName(string(action), s.now()), text)
}
