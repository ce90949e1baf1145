package service

import (
	"context"
	"fmt"

	"job-management-api/internal/common"
	"job-management-api/internal/entity"
	"job-management-api/internal/repo"
	"job-management-api/pkg/logging"
)

// ReconcileService brings the persisted job collection into agreement with
// an uploaded batch of rows, joined on the customer name. One scan of the
// store and one write per row bounds the work to O(existing) + O(incoming).
type ReconcileService struct {
	jobRepo repo.Job
	ids     IdentityAssigner
	log     *logging.Logger
}

func NewReconcileService(repos *repo.Repositories, ids IdentityAssigner, log *logging.Logger) *ReconcileService {
	return &ReconcileService{
		jobRepo: repos.Job,
		ids:     ids,
		log:     log,
	}
}

// ImportJobs applies the batch. Rows with a known key are partial updates
// that never touch the completed/archived flags; unknown keys are inserted
// with a fresh identity. In replace mode every persisted job whose key was
// absent from the batch is then deleted, making the batch authoritative.
//
// The scan-then-write sequence is not serialized against concurrent manual
// edits; a manual edit landing in between is overwritten last-writer-wins.
func (s *ReconcileService) ImportJobs(ctx context.Context, rows []entity.ImportRow, mode string) (*entity.ImportSummary, error) {
	if !common.IsImportMode(mode) {
		return nil, fmt.Errorf("%w: unknown import mode %q", ErrValidation, mode)
	}

	existing, err := s.jobRepo.GetAllJobs(ctx)
	if err != nil {
		return nil, storeErr(err)
	}

	byName := make(map[string]entity.Job, len(existing))
	for _, job := range existing {
		byName[job.Name] = job
	}

	summary := &entity.ImportSummary{}
	seen := make(map[string]bool, len(rows))
	updated := make(map[string]bool)

	for _, row := range rows {
		if job, ok := byName[row.Name]; ok {
			patch := rowPatch(&row)
			// a name-only row marks the key as seen but writes nothing
			if patch != (entity.EditJobInput{}) {
				if err := s.jobRepo.EditJobById(ctx, job.Id.String(), &patch); err != nil {
					return summary, storeErr(err)
				}
				if !updated[row.Name] {
					summary.Updated++
					updated[row.Name] = true
				}
			}
			seen[row.Name] = true
			continue
		}

		input := &entity.CreateJobInput{
			Id:      s.ids.NewID(),
			Name:    row.Name,
			Email:   row.Email,
			Phone:   row.Phone,
			Address: row.Address,
			Date:    row.Date,
			Info:    row.Info,
			Price:   row.Price,
		}
		if err := s.jobRepo.CreateJob(ctx, input); err != nil {
			return summary, storeErr(err)
		}
		// a later duplicate of this key must update, not insert again
		byName[row.Name] = entity.Job{Id: input.Id, Name: input.Name}
		seen[row.Name] = true
		summary.Inserted++
	}

	if mode == common.ModeReplace {
		for _, job := range existing {
			if seen[job.Name] {
				continue
			}
			if err := s.jobRepo.DeleteJobById(ctx, job.Id.String()); err != nil {
				return summary, storeErr(err)
			}
			summary.Deleted++
		}
	}

	s.log.Info("import reconciled",
		"mode", mode,
		"inserted", summary.Inserted,
		"updated", summary.Updated,
		"deleted", summary.Deleted)

	return summary, nil
}

// rowPatch maps a row onto a partial update, overwriting only the columns
// the file actually carried. Duplicate keys inside one batch therefore end
// as last-applied-wins on a single record.
func rowPatch(row *entity.ImportRow) entity.EditJobInput {
	var patch entity.EditJobInput
	if row.HasEmail {
		patch.Email = &row.Email
	}
	if row.HasPhone {
		patch.Phone = &row.Phone
	}
	if row.HasAddress {
		patch.Address = &row.Address
	}
	if row.HasDate {
		patch.Date = &row.Date
	}
	if row.HasInfo {
		patch.Info = &row.Info
	}
	if row.HasPrice {
		patch.Price = &row.Price
	}

	return patch
}

func (s *ReconcileService) ExportJobs(ctx context.Context, includeArchived bool) ([]entity.Job, error) {
	jobs, err := s.jobRepo.GetAllJobs(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	if includeArchived {
		return jobs, nil
	}

	active := make([]entity.Job, 0, len(jobs))
	for _, job := range jobs {
		if !job.Archived {
			active = append(active, job)
		}
	}

	return active, nil
}
