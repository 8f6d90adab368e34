package dto

type CountResponse struct {
	Count int64 `json:"count"`
}

type AdminStatsResponse struct {
	Users        CountResponse `json:"users"`
	Appointments CountResponse `json:"appointments"`
}
