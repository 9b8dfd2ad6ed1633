package model

// Link is a same-domain anchor discovered on a page.
type Link struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// TermCount records how often a dictionary term appeared in page content.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// PageRecord is the parsed result of fetching one URL. It is created once
// by the parser and never mutated afterwards.
//
// HTML is working data for the crawl and extraction phase only; the scanner
// clears it before the intelligence record is returned.
type PageRecord struct {
	URL             string                 `json:"url"`
	Title           string                 `json:"title"`
	MetaDescription string                 `json:"meta_description"`
	Content         string                 `json:"content"`
	ContentLength   int                    `json:"content_length"`
	Links           []Link                 `json:"links"`
	JobListings     []string               `json:"job_listings"`
	Emails          []string               `json:"emails"`
	TermCounts      map[string][]TermCount `json:"term_counts"`
	HTML            string                 `json:"-"`
}
