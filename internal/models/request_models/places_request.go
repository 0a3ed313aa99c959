package request_models

type PlaceSearchRequest struct {
	Query string `form:"query" binding:"required"`
}

type DirectionsRequest struct {
	Origin      string `form:"origin" binding:"required"`
	Destination string `form:"destination" binding:"required"`
	Mode        string `form:"mode"`
}

type GeocodeRequest struct {
	Address string `form:"address" binding:"required"`
}
