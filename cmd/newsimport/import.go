package main

import (
	"fmt"

	"github.com/rferraz/newsimport"
	"github.com/rferraz/newsimport/importer"
)

// ImportCmd imports a single article from a URL.
type ImportCmd struct {
	URL        string `arg:"" help:"URL of the article to import."`
	CategoryID string `help:"Category to assign the draft to."`
	APIKey     string `help:"Scrape API key (defaults to FIRECRAWL_API_KEY)."`
}

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	result, err := deps.Importer.Import(deps.Ctx, importer.Request{
		URL:        c.URL,
		CategoryID: c.CategoryID,
	})

	switch result.Outcome {
	case importer.OutcomeCreated:
		fmt.Fprintf(deps.Stdout, "Imported %q as draft %s (slug: %s)\n",
			result.Title, result.ArticleID, result.Slug)
		return nil

	case importer.OutcomeDuplicate:
		fmt.Fprintf(deps.Stdout, "Already imported: %s", c.URL)
		if result.ExistingArticleID != "" {
			fmt.Fprintf(deps.Stdout, " (article %s)", result.ExistingArticleID)
		}
		fmt.Fprintln(deps.Stdout)
		return nil

	default:
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsimport.ErrorMessage(err))
		if result.Stage == importer.StageExtract {
			fmt.Fprintf(deps.Stderr, "The content provider could not fetch this URL. It may be temporary; try again later.\n")
		}
		return err
	}
}
