// Package pagemd converts rendered HTML pages into clean Markdown articles.
// It locates the article body with per-site selector profiles, strips
// navigation and widgets, and renders the remaining tree as Markdown with
// special handling for code blocks and tables.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, yaml/, trafilatura/).
package pagemd
