package main

import (
	"fmt"

	"github.com/rferraz/newsimport"
)

// ArticlesListCmd lists articles.
type ArticlesListCmd struct {
	Status string `help:"Filter by status (draft or published)."`
	Limit  int    `default:"20" help:"Maximum number of articles to show."`
	Full   bool   `help:"Show the full HTML content of each article."`
}

// Run executes the articles list command.
func (c *ArticlesListCmd) Run(deps *Dependencies) error {
	filter := newsimport.ArticleFilter{Limit: c.Limit}
	if c.Status != "" {
		filter.Status = &c.Status
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsimport.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'newsimport import' to create one.")
		return nil
	}

	for _, a := range articles {
		fmt.Fprintf(deps.Stdout, "%s  [%s]  %s  (%s)\n", a.ID, a.Status, a.Title, a.Slug)
		if c.Full {
			fmt.Fprintln(deps.Stdout, a.Content)
		}
	}

	return nil
}
