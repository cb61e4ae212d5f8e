// Package tabdoc provides a CLI tool that extracts documentation pages to
// markdown files. It fetches a page, locates the article body among the
// page's navigation chrome, optionally filters the content down to selected
// programming-language sections (the "tabs" of a templated documentation
// site), and converts the result to markdown.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, htmltomarkdown/).
package tabdoc
