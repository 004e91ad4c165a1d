// Package sbd splits documents into sentences for text-to-speech playback
// and paginated reading views.
//
// # Quick Start
//
//	seg := sbd.New()
//	for _, s := range seg.Segment("<p>Dr. Smith paid $19.99. Was it worth it?</p>") {
//	    fmt.Println(s)
//	}
//	// Dr. Smith paid $19.99.
//	// Was it worth it?
//
// # Pipeline
//
// Segment runs three stages. Block extraction flattens HTML into the text
// of its paragraphs, headings, list items, quotes and table cells (plain
// text is one block). Each block is split at sentence boundaries using
// punctuation rules that respect abbreviations, decimals, initials,
// quotations and runs like "..." or "?!". Finally whitespace is collapsed
// and fragments of three runes or fewer are dropped.
//
// The rules are heuristics for English prose. They may merge or split a
// sentence wrongly on unusual input but never fail and never drop text
// other than the short fragments above.
//
// # Thread Safety
//
// Segmenter holds no mutable state and is safe for concurrent use.
// SegmentAll segments many documents in parallel, bounded by
// WithConcurrency.
package sbd
