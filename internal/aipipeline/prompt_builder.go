package aipipeline

import (
	"fmt"
	"strings"
)

const jsonOnlyDirective = "Make sure the response is ONLY valid JSON without any additional text before or after."

// PromptBuilder renders prompts in a fixed order: role framing, input fields,
// numbered instructions, a literal JSON example and the JSON-only directive.
// It never fails; absent values are replaced by their fallback text.
type PromptBuilder struct {
	sb   strings.Builder
	step int
}

func NewPromptBuilder(role string) *PromptBuilder {
	b := &PromptBuilder{}
	b.sb.WriteString(strings.TrimSpace(role))
	b.sb.WriteString("\n")
	return b
}

func (b *PromptBuilder) Section(title string) *PromptBuilder {
	fmt.Fprintf(&b.sb, "\n**%s:**\n", title)
	b.step = 0
	return b
}

func (b *PromptBuilder) Field(label, value, fallback string) *PromptBuilder {
	if strings.TrimSpace(value) == "" {
		value = fallback
	}
	fmt.Fprintf(&b.sb, "- %s: %s\n", label, value)
	return b
}

func (b *PromptBuilder) ListField(label string, values []string, fallback string) *PromptBuilder {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			kept = append(kept, v)
		}
	}
	return b.Field(label, strings.Join(kept, ", "), fallback)
}

// Instruction appends the next numbered line of the current section.
func (b *PromptBuilder) Instruction(format string, args ...any) *PromptBuilder {
	b.step++
	fmt.Fprintf(&b.sb, "%d. %s\n", b.step, fmt.Sprintf(format, args...))
	return b
}

func (b *PromptBuilder) Line(text string) *PromptBuilder {
	b.sb.WriteString(text)
	b.sb.WriteString("\n")
	return b
}

func (b *PromptBuilder) Example(intro, example string) *PromptBuilder {
	fmt.Fprintf(&b.sb, "\n%s\n%s\n", intro, strings.TrimSpace(example))
	return b
}

// String returns the prompt with the JSON-only directive appended.
func (b *PromptBuilder) String() string {
	return b.sb.String() + "\n" + jsonOnlyDirective + "\n"
}
