package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/rferraz/newsimport"
	"github.com/rferraz/newsimport/importer"
)

// CLI defines the command-line interface structure.
type CLI struct {
	Import     ImportCmd     `cmd:"" help:"Import a single article from a URL."`
	Sources    SourcesCmd    `cmd:"" help:"Manage recurring content sources."`
	Articles   ArticlesCmd   `cmd:"" help:"Inspect imported articles."`
	Categories CategoriesCmd `cmd:"" help:"Manage article categories."`

	Verbose bool `short:"v" help:"Enable verbose logging."`
}

// SourcesCmd groups source subcommands.
type SourcesCmd struct {
	Add    SourcesAddCmd    `cmd:"" help:"Register a content source."`
	List   SourcesListCmd   `cmd:"" help:"List content sources."`
	Run    SourcesRunCmd    `cmd:"" help:"Import from all enabled sources."`
	Delete SourcesDeleteCmd `cmd:"" help:"Delete a content source."`
}

// ArticlesCmd groups article subcommands.
type ArticlesCmd struct {
	List ArticlesListCmd `cmd:"" help:"List articles."`
}

// CategoriesCmd groups category subcommands.
type CategoriesCmd struct {
	Add  CategoriesAddCmd  `cmd:"" help:"Create a category."`
	List CategoriesListCmd `cmd:"" help:"List categories."`
}

// Dependencies holds the dependencies for CLI commands.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Articles   newsimport.ArticleService
	Imports    newsimport.ImportRecordService
	Sources    newsimport.SourceService
	Categories newsimport.CategoryService

	Importer *importer.Importer
	Runner   *importer.Runner
}
