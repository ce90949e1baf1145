package service

import (
	"time"

	"job-management-api/internal/entity"
)

func mapBid(b *entity.Bid) *entity.BidOutputModel {
	return &entity.BidOutputModel{
		Id:           b.Id.String(),
		Name:         b.Name,
		Email:        b.Email,
		Phone:        b.Phone,
		Address:      b.Address,
		Amount:       b.Amount,
		StartDate:    b.StartDate,
		Duration:     b.Duration,
		Notes:        b.Notes,
		Status:       b.Status,
		AcceptedDate: b.AcceptedDate,
		CreatedAt:    b.CreatedAt,
	}
}

func mapBids(bids []entity.Bid) []entity.BidOutputModel {
	s := make([]entity.BidOutputModel, 0)
	for _, bid := range bids {
		s = append(s, *mapBid(&bid))
	}

	return s
}

func mapJob(j *entity.Job) *entity.JobOutputModel {
	return &entity.JobOutputModel{
		Id:        j.Id.String(),
		Name:      j.Name,
		Email:     j.Email,
		Phone:     j.Phone,
		Address:   j.Address,
		Date:      j.Date,
		Info:      j.Info,
		Price:     j.Price,
		Completed: j.Completed,
		Archived:  j.Archived,
		CreatedAt: j.CreatedAt,
	}
}

func mapJobs(jobs []entity.Job) []entity.JobOutputModel {
	s := make([]entity.JobOutputModel, 0)
	for _, job := range jobs {
		s = append(s, *mapJob(&job))
	}

	return s
}

func mapShare(share *entity.ShareLink) *entity.ShareOutputModel {
	return &entity.ShareOutputModel{
		Id:        share.Id.String(),
		Day:       share.Day,
		Jobs:      mapJobs(share.Snapshot),
		Comment:   share.Comment,
		ExpiresAt: share.ExpiresAt.Format(time.RFC3339),
	}
}
