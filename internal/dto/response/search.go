package response

import "fmt"

// SearchCriteria echoes the parameters a search was evaluated with.
type SearchCriteria struct {
	Name  *string `json:"name"`
	ID    *int64  `json:"id"`
	Genre *string `json:"genre"`
}

type SearchResponse struct {
	Movies         []MovieResponse `json:"movies"`
	TotalResults   int             `json:"total_results"`
	SearchCriteria SearchCriteria  `json:"search_criteria"`
}

// Message summarises the outcome for display.
func (r SearchResponse) Message() string {
	switch r.TotalResults {
	case 0:
		return "No movies found matching the search criteria"
	case 1:
		return "Found 1 movie"
	default:
		return fmt.Sprintf("Found %d movies", r.TotalResults)
	}
}
