package newsimport_test

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rferraz/newsimport"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	at := time.Unix(1700000000, 0)
	suffix := "-" + strconv.FormatInt(at.Unix(), 36)

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "lowercases and hyphenates",
			title: "Apple Announces New iPhone",
			want:  "apple-announces-new-iphone" + suffix,
		},
		{
			name:  "strips diacritics",
			title: "Apple lança novo iPhone",
			want:  "apple-lanca-novo-iphone" + suffix,
		},
		{
			name:  "collapses punctuation runs",
			title: "Breaking!!!  News -- Today",
			want:  "breaking-news-today" + suffix,
		},
		{
			name:  "trims leading and trailing hyphens",
			title: "  ...Hello...  ",
			want:  "hello" + suffix,
		},
		{
			name:  "empty title yields bare suffix",
			title: "!!!",
			want:  strings.TrimPrefix(suffix, "-"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, newsimport.Slugify(tt.title, at))
		})
	}
}

func TestSlugify_TruncatesLongTitles(t *testing.T) {
	t.Parallel()

	at := time.Unix(1700000000, 0)
	slug := newsimport.Slugify(strings.Repeat("word ", 50), at)

	// 100 chars of title material plus "-" plus the base-36 suffix.
	assert.LessOrEqual(t, len(slug), 100+1+len(strconv.FormatInt(at.Unix(), 36)))
	assert.False(t, strings.Contains(slug, "--"))
}

func TestSlugify_UniqueAcrossTimes(t *testing.T) {
	t.Parallel()

	first := newsimport.Slugify("Same Title", time.Unix(1700000000, 0))
	second := newsimport.Slugify("Same Title", time.Unix(1700000001, 0))

	assert.NotEqual(t, first, second)
}

func TestCleanTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "strips hyphen suffix",
			title: "Apple lança novo iPhone - TechSite",
			want:  "Apple lança novo iPhone",
		},
		{
			name:  "strips pipe suffix",
			title: "Market closes higher | Finance Daily",
			want:  "Market closes higher",
		},
		{
			name:  "strips bullet suffix",
			title: "Election results • The Herald",
			want:  "Election results",
		},
		{
			name:  "strips em dash suffix",
			title: "New study released — Science Now",
			want:  "New study released",
		},
		{
			name:  "only last segment is stripped",
			title: "Budget 2026 - what changes - NewsSite",
			want:  "Budget 2026 - what changes",
		},
		{
			name:  "leaves hyphenated words alone",
			title: "State-of-the-art results",
			want:  "State-of-the-art results",
		},
		{
			name:  "no suffix",
			title: "Plain title",
			want:  "Plain title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, newsimport.CleanTitle(tt.title))
		})
	}
}
