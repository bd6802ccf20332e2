package converter

import (
	"healthcare-first-portal/internal/delivery/dto"
	"healthcare-first-portal/internal/domain/entity"
)

// BlockedDayToResponse converts a BlockedDay entity to its response DTO
func BlockedDayToResponse(blockedDay *entity.BlockedDay) *dto.BlockedDayResponse {
	if blockedDay == nil {
		return nil
	}
	return &dto.BlockedDayResponse{
		ID:        blockedDay.ID,
		Date:      blockedDay.Date.Format("2006-01-02"),
		StartTime: blockedDay.StartTime,
		EndTime:   blockedDay.EndTime,
		Reason:    blockedDay.Reason,
		IsFullDay: blockedDay.IsFullDay,
	}
}

// BlockedDaysToListResponse converts blocked days to a list response
func BlockedDaysToListResponse(blockedDays []entity.BlockedDay) *dto.BlockedDayListResponse {
	responses := make([]dto.BlockedDayResponse, len(blockedDays))
	for i := range blockedDays {
		responses[i] = *BlockedDayToResponse(&blockedDays[i])
	}
	return &dto.BlockedDayListResponse{
		BlockedDays: responses,
		Total:       len(responses),
	}
}
