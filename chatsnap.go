// Package chatsnap extracts a shared conversation page into a single,
// LLM-friendly markdown (or PDF) document. It drives a browser to render
// the share page, scrapes conversation turns and embedded code blocks
// from the rendered DOM, stages them in a working directory, and merges
// them into one consolidated file with a table of contents.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., rod/,
// goquery/, fs/).
package chatsnap
