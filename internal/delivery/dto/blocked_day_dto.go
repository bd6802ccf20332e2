package dto

// Request DTOs

type CreateBlockedDayRequest struct {
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime *string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime   *string `json:"end_time" validate:"omitempty,datetime=15:04"`
	Reason    string  `json:"reason" validate:"omitempty,max=255"`
	IsFullDay *bool   `json:"is_full_day"`
}

type UpdateBlockedDayRequest struct {
	Date      string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime *string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime   *string `json:"end_time" validate:"omitempty,datetime=15:04"`
	Reason    string  `json:"reason" validate:"omitempty,max=255"`
	IsFullDay *bool   `json:"is_full_day"`
}

// Response DTOs

type BlockedDayResponse struct {
	ID        int     `json:"id"`
	Date      string  `json:"date"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Reason    string  `json:"reason,omitempty"`
	IsFullDay bool    `json:"is_full_day"`
}

type BlockedDayListResponse struct {
	BlockedDays []BlockedDayResponse `json:"blocked_days"`
	Total       int                  `json:"total"`
}
