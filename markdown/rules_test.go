package markdown_test

import (
	"testing"

	"github.com/rferraz/newsimport/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ruleByName fetches a single rule so each category can be tested in
// isolation from the rest of the set.
func ruleByName(t *testing.T, name string) markdown.Rule {
	t.Helper()
	for _, r := range markdown.DefaultRules() {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("rule %q not found", name)
	return markdown.Rule{}
}

func applyRule(r markdown.Rule, s string) string {
	return r.Pattern.ReplaceAllString(s, r.Replacement)
}

func TestDefaultRules_Order(t *testing.T) {
	t.Parallel()

	var names []string
	for _, r := range markdown.DefaultRules() {
		names = append(names, r.Name)
	}

	assert.Equal(t, []string{
		"social-share",
		"byline",
		"newsletter-cta",
		"related-teaser",
		"comments-header",
		"copyright",
		"tag-label",
		"breadcrumb",
		"social-icon",
		"empty-link",
	}, names)
}

func TestRule_SocialShare(t *testing.T) {
	t.Parallel()

	rule := ruleByName(t, "social-share")

	tests := []struct {
		name    string
		in      string
		removed bool
	}{
		{name: "portuguese follow line", in: "Siga-nos no Facebook\n", removed: true},
		{name: "english follow line", in: "Follow us on Twitter for updates\n", removed: true},
		{name: "share cta", in: "Compartilhe esta notícia\n", removed: true},
		{name: "mention in prose survives", in: "The company announced earnings today.\n", removed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := applyRule(rule, tt.in)
			if tt.removed {
				assert.Empty(t, out)
			} else {
				assert.Equal(t, tt.in, out)
			}
		})
	}
}

func TestRule_Byline(t *testing.T) {
	t.Parallel()

	rule := ruleByName(t, "byline")

	assert.Empty(t, applyRule(rule, "Por Maria Silva\n"))
	assert.Empty(t, applyRule(rule, "escrito por João Costa\n"))
	assert.Empty(t, applyRule(rule, "By John Smith\n"))

	// "por" mid-line must survive.
	kept := "O projeto foi aprovado por unanimidade após longo debate entre os integrantes da comissão especial criada no mês passado.\n"
	assert.Equal(t, kept, applyRule(rule, kept))
}

func TestRule_NewsletterCTA(t *testing.T) {
	t.Parallel()

	rule := ruleByName(t, "newsletter-cta")

	assert.Empty(t, applyRule(rule, "Inscreva-se na nossa newsletter!\n"))
	assert.Empty(t, applyRule(rule, "Subscribe for daily updates\n"))
}

func TestRule_RelatedTeaser(t *testing.T) {
	t.Parallel()

	rule := ruleByName(t, "related-teaser")

	assert.Empty(t, applyRule(rule, "Leia também: mercado fecha em alta\n"))
	assert.Empty(t, applyRule(rule, "Veja mais sobre o assunto\n"))
	assert.Empty(t, applyRule(rule, "Related articles\n"))
}

func TestRule_CommentsHeader(t *testing.T) {
	t.Parallel()

	rule := ruleByName(t, "comments-header")

	assert.Empty(t, applyRule(rule, "## Comentários\n"))
	assert.Empty(t, applyRule(rule, "Comments\n"))

	kept := "The comments drew criticism from officials.\n"
	assert.Equal(t, kept, applyRule(rule, kept))
}

func TestRule_Copyright(t *testing.T) {
	t.Parallel()

	rule := ruleByName(t, "copyright")

	assert.Empty(t, applyRule(rule, "© 2026 TechSite. Todos os direitos reservados.\n"))
	assert.Empty(t, applyRule(rule, "Copyright 2026 Example Inc. All rights reserved.\n"))
}

func TestRule_TagLabel(t *testing.T) {
	t.Parallel()

	rule := ruleByName(t, "tag-label")

	assert.Empty(t, applyRule(rule, "Tags: economia, mercado\n"))
	assert.Empty(t, applyRule(rule, "Categorias: Tecnologia\n"))
}

func TestRule_Breadcrumb(t *testing.T) {
	t.Parallel()

	rule := ruleByName(t, "breadcrumb")

	assert.Empty(t, applyRule(rule, "Home > Notícias > Economia\n"))
	assert.Empty(t, applyRule(rule, "Início » Tecnologia\n"))
}

func TestRule_SocialIcon(t *testing.T) {
	t.Parallel()

	rule := ruleByName(t, "social-icon")

	assert.Empty(t, applyRule(rule, "Facebook\n"))
	assert.Empty(t, applyRule(rule, "[Twitter]\n"))

	kept := "Facebook announced a new policy today.\n"
	assert.Equal(t, kept, applyRule(rule, kept))
}

func TestRule_EmptyLink(t *testing.T) {
	t.Parallel()

	rule := ruleByName(t, "empty-link")

	out := applyRule(rule, "before [](https://example.com/x) after")
	require.Equal(t, "before  after", out)
}
