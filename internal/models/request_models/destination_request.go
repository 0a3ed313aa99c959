package request_models

type DestinationListRequest struct {
	Search string `form:"search"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=50"`
}

type PopularDestinationsRequest struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=20"`
}

type NearbySearchRequest struct {
	Location  string `form:"location" binding:"required"`
	Radius    int    `form:"radius" binding:"omitempty,min=100,max=50000"`
	PlaceType string `form:"place_type"`
}

type DestinationSuggestionRequest struct {
	Interests string `form:"interests" binding:"required"`
	Budget    string `form:"budget" binding:"required"`
	Duration  int    `form:"duration" binding:"required,min=1,max=30"`
}
