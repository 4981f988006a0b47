package markdown

import "regexp"

// Rule removes one category of boilerplate from extracted markdown.
// Rules are independent: no rule relies on another's output, so each can be
// tested and extended in isolation.
type Rule struct {
	// Name identifies the boilerplate category.
	Name string

	// Pattern matches the boilerplate to remove.
	Pattern *regexp.Regexp

	// Replacement substitutes matched text, usually the empty string.
	Replacement string
}

// DefaultRules returns the ordered rule set applied by Clean. The order is
// fixed but not load-bearing; whitespace collapsing always runs last,
// outside the rule list.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:        "social-share",
			Pattern:     regexp.MustCompile(`(?im)^.*(?:siga-nos|siga a gente|follow us|share (?:this|on)|compartilhe).*$\n?`),
			Replacement: "",
		},
		{
			Name:        "byline",
			Pattern:     regexp.MustCompile(`(?im)^(?:by|por|autora?:|escrito por)\s+\S[^\n]{0,70}$\n?`),
			Replacement: "",
		},
		{
			Name:        "newsletter-cta",
			Pattern:     regexp.MustCompile(`(?im)^.*(?:newsletter|inscreva-se|assine (?:a|nossa)|subscribe).*$\n?`),
			Replacement: "",
		},
		{
			Name:        "related-teaser",
			Pattern:     regexp.MustCompile(`(?im)^.*(?:leia (?:tamb[ée]m|mais)|veja (?:tamb[ée]m|mais)|related (?:articles?|posts?)|artigos relacionados).*$\n?`),
			Replacement: "",
		},
		{
			Name:        "comments-header",
			Pattern:     regexp.MustCompile(`(?im)^#{0,6}\s*(?:coment[áa]rios?|comments?)\s*$\n?`),
			Replacement: "",
		},
		{
			Name:        "copyright",
			Pattern:     regexp.MustCompile(`(?im)^.*(?:©|copyright|todos os direitos reservados|all rights reserved).*$\n?`),
			Replacement: "",
		},
		{
			Name:        "tag-label",
			Pattern:     regexp.MustCompile(`(?im)^\s*(?:tags?|categorias?|categories)\s*:.*$\n?`),
			Replacement: "",
		},
		{
			Name:        "breadcrumb",
			Pattern:     regexp.MustCompile(`(?im)^\s*(?:home|in[íi]cio)\s*(?:[>»/]\s*[^\n>»/]+){1,}$\n?`),
			Replacement: "",
		},
		{
			Name:        "social-icon",
			Pattern:     regexp.MustCompile(`(?im)^\s*\[?(?:facebook|twitter|instagram|whatsapp|telegram|linkedin|youtube|pinterest)\]?\s*$\n?`),
			Replacement: "",
		},
		{
			Name:        "empty-link",
			Pattern:     regexp.MustCompile(`\[\s*\]\([^)]*\)`),
			Replacement: "",
		},
	}
}
