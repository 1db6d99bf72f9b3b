package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Agent 负责标题候选与正文草稿的生成。
type Agent struct {
	llm LLMClient
}

func NewAgent(llm LLMClient) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	return &Agent{llm: llm}, nil
}

// GenerateTitles asks the model for a batch of title candidates for the
// domain, passing previously published titles so the model avoids them.
// The returned order is the model's; selection policy belongs to the caller.
func (a *Agent) GenerateTitles(ctx context.Context, domain string, excluded []string) ([]string, error) {
	raw, err := a.llm.Complete(ctx, BuildTitlePrompt(domain, excluded))
	if err != nil {
		return nil, err
	}
	return ExtractTitles(raw)
}

// GenerateDraft asks the model for the article content for a fixed title.
// The title is never taken from the model output; only body and excerpt are.
func (a *Agent) GenerateDraft(ctx context.Context, title string) (Draft, error) {
	raw, err := a.llm.Complete(ctx, BuildDraftPrompt(title))
	if err != nil {
		return Draft{}, err
	}
	fields, err := ExtractFields(raw, "body", "excerpt")
	if err != nil {
		return Draft{}, err
	}

	body, err := NormalizeBody(fields["body"])
	if err != nil {
		return Draft{}, err
	}

	draft := Draft{
		Title:   strings.TrimSpace(title),
		Body:    strings.TrimSpace(body),
		Excerpt: strings.TrimSpace(fields["excerpt"]),
	}
	if draft.Title == "" || draft.Body == "" || draft.Excerpt == "" {
		return Draft{}, fmt.Errorf("%w: draft has an empty field", ErrIncompleteResponse)
	}
	return draft, nil
}
