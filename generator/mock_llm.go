package generator

import (
	"context"
	"strings"
)

// MockLLM 一个简单的占位实现，便于本地调试，不调用外部模型。
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	if strings.Contains(prompt.User, `"titles"`) {
		return "```json\n" + `{"titles": ["Mock Title One", "Mock Title Two", "Mock Title Three", "Mock Title Four", "Mock Title Five"]}` + "\n```", nil
	}
	return "```json\n" + `{"body": "<p>This is a mock article body.</p><h2>Mock Heading</h2><p>More mock content.</p>", "excerpt": "A mock excerpt for local runs."}` + "\n```", nil
}
