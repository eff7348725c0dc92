package domain

// HistoricalWinner lists the division champions for one year.
type HistoricalWinner struct {
	Year    string           `json:"year" yaml:"year"`
	Results []DivisionResult `json:"results" yaml:"results"`
}

type DivisionResult struct {
	Division string `json:"division" yaml:"division"`
	Team     string `json:"team" yaml:"team"`
	RunnerUp string `json:"runnerUp,omitempty" yaml:"runnerUp,omitempty"`
}
