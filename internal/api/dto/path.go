package dto

type QuotePathRequest struct {
	StationIDs []int `json:"station_ids"`
	Age        *int  `json:"age"`
}

type StationResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type LineResponse struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Color         string `json:"color"`
	SurchargeFare int    `json:"surcharge_fare"`
}

type FareBreakdownResponse struct {
	DistanceFare int    `json:"distance_fare"`
	Surcharge    int    `json:"surcharge"`
	PreDiscount  int    `json:"pre_discount"`
	AgeGroup     string `json:"age_group"`
}

type QuotePathResponse struct {
	Stations  []StationResponse     `json:"stations"`
	Lines     []LineResponse        `json:"lines"`
	Distance  int                   `json:"distance"`
	Duration  int                   `json:"duration"`
	Fare      int                   `json:"fare"`
	Breakdown FareBreakdownResponse `json:"breakdown"`
}

type ListLinesResponse struct {
	Lines []LineResponse `json:"lines"`
}
