package main

import (
	"fmt"

	"github.com/rferraz/newsimport"
	"github.com/rferraz/newsimport/importer"
)

// SourcesAddCmd registers a content source.
type SourcesAddCmd struct {
	Name       string `arg:"" help:"Display name for the source."`
	URL        string `arg:"" help:"Article URL to import from this source."`
	CategoryID string `help:"Category assigned to articles from this source."`
	Disabled   bool   `help:"Register the source without enabling it."`
}

// Run executes the sources add command.
func (c *SourcesAddCmd) Run(deps *Dependencies) error {
	source := &newsimport.Source{
		Name:       c.Name,
		URL:        c.URL,
		CategoryID: c.CategoryID,
		Enabled:    !c.Disabled,
	}

	if err := deps.Sources.CreateSource(deps.Ctx, source); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsimport.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added source %q (%s)\n", c.Name, source.ID)
	return nil
}

// SourcesListCmd lists content sources.
type SourcesListCmd struct {
	Enabled bool `help:"Show only enabled sources."`
}

// Run executes the sources list command.
func (c *SourcesListCmd) Run(deps *Dependencies) error {
	filter := newsimport.SourceFilter{}
	if c.Enabled {
		enabled := true
		filter.Enabled = &enabled
	}

	sources, err := deps.Sources.FindSources(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsimport.ErrorMessage(err))
		return err
	}

	if len(sources) == 0 {
		fmt.Fprintln(deps.Stdout, "No sources found. Use 'newsimport sources add' to create one.")
		return nil
	}

	for _, s := range sources {
		state := "enabled"
		if !s.Enabled {
			state = "disabled"
		}
		last := "never"
		if s.LastScrapedAt != nil {
			last = s.LastScrapedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s  last run: %s\n", s.ID, s.Name, s.URL, state, last)
	}

	return nil
}

// SourcesRunCmd imports from all enabled sources.
type SourcesRunCmd struct {
	Concurrency int    `default:"4" help:"Number of sources processed in parallel."`
	APIKey      string `help:"Scrape API key (defaults to FIRECRAWL_API_KEY)."`
}

// Run executes the sources run command.
func (c *SourcesRunCmd) Run(deps *Dependencies) error {
	var created, duplicate, failed int

	report := func(sr importer.SourceResult) {
		switch sr.Result.Outcome {
		case importer.OutcomeCreated:
			created++
			fmt.Fprintf(deps.Stdout, "  %s: imported %q\n", sr.Source.Name, sr.Result.Title)
		case importer.OutcomeDuplicate:
			duplicate++
			fmt.Fprintf(deps.Stdout, "  %s: already imported\n", sr.Source.Name)
		default:
			failed++
			fmt.Fprintf(deps.Stderr, "  %s: %s\n", sr.Source.Name, sr.Result.Message)
		}
	}

	if err := deps.Runner.Run(deps.Ctx, report); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsimport.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Done: %d imported, %d duplicates, %d failed\n", created, duplicate, failed)
	return nil
}

// SourcesDeleteCmd deletes a content source.
type SourcesDeleteCmd struct {
	Name  string `arg:"" help:"Name of the source to delete."`
	Force bool   `help:"Confirm deletion."`
}

// Run executes the sources delete command.
func (c *SourcesDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return newsimport.Errorf(newsimport.EINVALID, "use --force to confirm deletion")
	}

	sources, err := deps.Sources.FindSources(deps.Ctx, newsimport.SourceFilter{Name: &c.Name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsimport.ErrorMessage(err))
		return err
	}

	if len(sources) == 0 {
		fmt.Fprintf(deps.Stderr, "error: source %q not found. Use 'newsimport sources list' to see available sources.\n", c.Name)
		return newsimport.Errorf(newsimport.ENOTFOUND, "source %q not found", c.Name)
	}

	source := sources[0]
	if err := deps.Sources.DeleteSource(deps.Ctx, source.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsimport.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted source %q\n", source.Name)
	return nil
}
