package domain

// Alert is a single validation finding. Row is the source row index the
// finding refers to, or nil for dataset-level findings.
type Alert struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Row      *int     `json:"row,omitempty"`
}

// Summary tallies alerts per severity. Total counts every alert, including
// ones whose severity falls outside the known set.
type Summary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Infos    int `json:"infos"`
	Total    int `json:"total"`
}
