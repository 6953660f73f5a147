package domain

// RepoRef identifies a repository parsed from an input URL.
// It is recomputed per URL and never persisted.
type RepoRef struct {
	Owner string
	Name  string
	URL   string // original input URL, used as the clone remote
}

// Status is the terminal state of one URL's processing attempt
type Status string

const (
	// StatusSuccess means a README file was written for the repository
	StatusSuccess Status = "Success"
	// StatusFailed means no README file was produced
	StatusFailed Status = "Failed"
)

// Outcome is the immutable record of one input URL's processing attempt.
// Exactly one Outcome is produced per input URL.
type Outcome struct {
	RepoName    string // empty when the URL could not be parsed
	SourceURL   string
	Status      Status
	ErrorDetail string // populated only for failed outcomes
}

// Success reports whether the outcome produced a README file
func (o Outcome) Success() bool {
	return o.Status == StatusSuccess
}

// Summary holds the totals folded over a run's outcomes
type Summary struct {
	Total      int
	Successful int
	Failed     int
}
