package fiber

type FacetOptionsResponse struct {
	Publisher []string `json:"publisher"`
	Genre     []string `json:"genre"`
	Status    []string `json:"status"`
	Category  []string `json:"category"`
	Tags      []string `json:"tags"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"no_snapshot"`
	Message string `json:"message" example:"no dataset snapshot loaded"`
}
