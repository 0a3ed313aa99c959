package request_models

type HotelSearchRequest struct {
	Destination string   `form:"destination" binding:"required"`
	Budget      string   `form:"budget"`
	Guests      int      `form:"guests" binding:"omitempty,min=1,max=20"`
	Duration    int      `form:"duration" binding:"omitempty,min=1,max=30"`
	Preferences []string `form:"preferences"`
}

// WithDefaults fills the optional query parameters.
func (r HotelSearchRequest) WithDefaults() HotelSearchRequest {
	if r.Budget == "" {
		r.Budget = "medium"
	}
	if r.Guests == 0 {
		r.Guests = 2
	}
	if r.Duration == 0 {
		r.Duration = 3
	}
	return r
}

type ReviewSummaryRequest struct {
	Reviews []string `json:"reviews" binding:"required"`
}
