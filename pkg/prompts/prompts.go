package prompts

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"
)

const (
	defaultPromptsPath = "prompts.yaml"
	defaultErrorPrefix = "Lỗi: "
)

//go:embed default.yaml
var defaultPrompts []byte

// Prompts holds every user-facing string shown by the CLI and the studio form.
type Prompts struct {
	Status  StatusPrompts               `yaml:"status"`
	Studio  StudioPrompts               `yaml:"studio"`
	Fields  map[string]map[string]Field `yaml:"fields"`
	Actions map[string]string           `yaml:"actions"`

	errorTmpl *template.Template
}

type StatusPrompts struct {
	Processing string `yaml:"processing"`
	Error      string `yaml:"error"`
}

type StudioPrompts struct {
	Action string `yaml:"action"`
	Save   string `yaml:"save"`
	Again  string `yaml:"again"`
}

type Field struct {
	Title       string `yaml:"title"`
	Placeholder string `yaml:"placeholder"`
}

type ErrorParams struct {
	Message string
}

func Default() *Prompts {
	p, err := parse(defaultPrompts, nil)
	if err != nil {
		panic(fmt.Sprintf("embedded prompts are invalid: %v", err))
	}
	return p
}

// Load overlays prompts.yaml from the working directory on the defaults.
// A missing file is not an error.
func Load() (*Prompts, error) {
	p, err := LoadFrom(defaultPromptsPath)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return p, err
}

func LoadFrom(path string) (*Prompts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompts file: %w", err)
	}

	return parse(data, Default())
}

func parse(data []byte, base *Prompts) (*Prompts, error) {
	p := &Prompts{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse prompts file: %w", err)
	}

	if base != nil {
		merged := base.clone()
		merged.merge(p)
		p = merged
	}

	tmpl, err := template.New("error").Parse(p.Status.Error)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	p.errorTmpl = tmpl

	return p, nil
}

func (p *Prompts) clone() *Prompts {
	c := &Prompts{
		Status:  p.Status,
		Studio:  p.Studio,
		Fields:  make(map[string]map[string]Field, len(p.Fields)),
		Actions: make(map[string]string, len(p.Actions)),
	}
	for action, fields := range p.Fields {
		c.Fields[action] = make(map[string]Field, len(fields))
		for name, f := range fields {
			c.Fields[action][name] = f
		}
	}
	for k, v := range p.Actions {
		c.Actions[k] = v
	}
	return c
}

func (p *Prompts) merge(o *Prompts) {
	if o.Status.Processing != "" {
		p.Status.Processing = o.Status.Processing
	}
	if o.Status.Error != "" {
		p.Status.Error = o.Status.Error
	}
	if o.Studio.Action != "" {
		p.Studio.Action = o.Studio.Action
	}
	if o.Studio.Save != "" {
		p.Studio.Save = o.Studio.Save
	}
	if o.Studio.Again != "" {
		p.Studio.Again = o.Studio.Again
	}
	for action, fields := range o.Fields {
		if p.Fields[action] == nil {
			p.Fields[action] = make(map[string]Field, len(fields))
		}
		for name, f := range fields {
			p.Fields[action][name] = f
		}
	}
	for k, v := range o.Actions {
		p.Actions[k] = v
	}
}

func (p *Prompts) Processing() string {
	return p.Status.Processing
}

// RenderError formats a failure message for an output area.
func (p *Prompts) RenderError(message string) string {
	if p.errorTmpl == nil {
		return defaultErrorPrefix + message
	}

	var buf bytes.Buffer
	if err := p.errorTmpl.Execute(&buf, ErrorParams{Message: message}); err != nil {
		return defaultErrorPrefix + message
	}

	return buf.String()
}

func (p *Prompts) Field(action, name string) Field {
	f, ok := p.Fields[action][name]
	if !ok || f.Title == "" {
		f.Title = name
	}
	return f
}

func (p *Prompts) Action(action string) string {
	if title, ok := p.Actions[action]; ok && title != "" {
		return title
	}
	return action
}
