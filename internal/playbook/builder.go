// Package playbook generates sales playbooks from website intelligence
// using the Anthropic API.
package playbook

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/flux-imaging/prospect-cli/internal/config"
	"github.com/flux-imaging/prospect-cli/internal/model"
	"github.com/flux-imaging/prospect-cli/pkg/anthropic"
)

const (
	defaultModel     = "claude-sonnet-4-5-20250929"
	defaultMaxTokens = 4096
)

// Builder generates playbook sections one at a time, each grounded in the
// same facility context and website intelligence summary.
type Builder struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewBuilder creates a Builder from config.
func NewBuilder(client anthropic.Client, cfg config.AnthropicConfig) *Builder {
	b := &Builder{
		client:    client,
		model:     cfg.Model,
		maxTokens: int64(cfg.MaxTokens),
	}
	if b.model == "" {
		b.model = defaultModel
	}
	if b.maxTokens <= 0 {
		b.maxTokens = defaultMaxTokens
	}
	return b
}

// Generate produces a full playbook for the facility. intel may be nil or
// carry a scan error, in which case sections are generated from facility
// details alone.
func (b *Builder) Generate(ctx context.Context, facility model.Facility, intel *model.WebsiteIntelligence) (*model.Playbook, error) {
	summary := ContextSummary(intel)

	playbook := &model.Playbook{
		ID:           uuid.New().String(),
		FacilityName: facility.Name,
		Website:      facility.Website,
		Sections:     make([]model.PlaybookSection, 0, len(sectionSpecs)),
		GeneratedAt:  time.Now().UTC(),
	}

	for _, spec := range sectionSpecs {
		resp, err := b.client.CreateMessage(ctx, anthropic.MessageRequest{
			Model:     b.model,
			MaxTokens: b.maxTokens,
			System:    systemPrompt,
			Messages: []anthropic.Message{
				{Role: "user", Content: buildUserMessage(spec, facility, summary)},
			},
		})
		if err != nil {
			return nil, eris.Wrapf(err, "playbook: generate section %q", spec.Title)
		}
		playbook.Sections = append(playbook.Sections, model.PlaybookSection{
			Title: spec.Title,
			Body:  strings.TrimSpace(resp.Text),
		})
		zap.L().Debug("playbook: section generated",
			zap.String("section", spec.Title),
			zap.String("facility", facility.Name),
		)
	}

	zap.L().Info("playbook: generation complete",
		zap.String("facility", facility.Name),
		zap.Int("sections", len(playbook.Sections)),
	)
	return playbook, nil
}

// ExportMarkdown renders the playbook as a single markdown document.
func ExportMarkdown(p *model.Playbook) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Sales Playbook: %s\n\n", p.FacilityName)
	if p.Website != "" {
		fmt.Fprintf(&sb, "Website: %s\n\n", p.Website)
	}
	fmt.Fprintf(&sb, "Generated: %s\n\n", p.GeneratedAt.Format(time.RFC3339))
	for _, s := range p.Sections {
		fmt.Fprintf(&sb, "## %s\n\n%s\n\n", s.Title, s.Body)
	}
	return sb.String()
}

// ExportJSON renders the playbook as indented JSON.
func ExportJSON(p *model.Playbook) ([]byte, error) {
	out, err := json.MarshalIndent(p, "", "  ")
	return out, eris.Wrap(err, "playbook: marshal json")
}

// ExportYAML renders the playbook as YAML.
func ExportYAML(p *model.Playbook) ([]byte, error) {
	out, err := yaml.Marshal(p)
	return out, eris.Wrap(err, "playbook: marshal yaml")
}
