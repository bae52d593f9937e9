package labourer

import (
	"context"
	"time"

	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/labourer"
	"github.com/shopspring/decimal"
)

type LabourerServiceImpl struct {
	labourerRepo labourer.LabourerRepository
}

func NewLabourerService(labourerRepo labourer.LabourerRepository) labourer.LabourerService {
	return &LabourerServiceImpl{labourerRepo: labourerRepo}
}

func toResponse(lab labourer.Labourer) labourer.LabourerResponse {
	var wage decimal.Decimal
	if lab.DailySalary != nil {
		wage = *lab.DailySalary
	}
	return labourer.LabourerResponse{
		ID:              lab.ID,
		FullName:        lab.FullName,
		FatherName:      lab.FatherName,
		Mobile:          lab.Mobile,
		AadhaarNumber:   lab.AadhaarNumber,
		PANNumber:       lab.PANNumber,
		DLNumber:        lab.DLNumber,
		AadhaarDocURL:   lab.AadhaarDocURL,
		PANDocURL:       lab.PANDocURL,
		DLDocURL:        lab.DLDocURL,
		DailySalary:     wage,
		LoanBalance:     lab.LoanBalance,
		ProfilePhotoURL: lab.ProfilePhotoURL,
		HasFaceScan:     lab.FaceScanDataURI != nil && *lab.FaceScanDataURI != "",
		CohortGroup:     lab.CohortGroup,
		CreatedAt:       lab.CreatedAt.Format(time.RFC3339),
	}
}

func (s *LabourerServiceImpl) Create(ctx context.Context, req labourer.CreateLabourerRequest) (labourer.LabourerResponse, error) {
	if err := req.Validate(); err != nil {
		return labourer.LabourerResponse{}, err
	}

	lab := labourer.Labourer{
		FullName:        req.FullName,
		FatherName:      req.FatherName,
		Mobile:          req.Mobile,
		AadhaarNumber:   req.AadhaarNumber,
		PANNumber:       req.PANNumber,
		DLNumber:        req.DLNumber,
		AadhaarDocURL:   req.AadhaarDocURL,
		PANDocURL:       req.PANDocURL,
		DLDocURL:        req.DLDocURL,
		DailySalary:     req.DailySalary,
		LoanBalance:     decimal.Zero,
		ProfilePhotoURL: req.ProfilePhotoURL,
		FaceScanDataURI: req.FaceScanDataURI,
		CohortGroup:     req.CohortGroup,
	}

	created, err := s.labourerRepo.Create(ctx, lab)
	if err != nil {
		return labourer.LabourerResponse{}, err
	}
	return toResponse(created), nil
}

func (s *LabourerServiceImpl) GetByID(ctx context.Context, id string) (labourer.LabourerResponse, error) {
	lab, err := s.labourerRepo.GetByID(ctx, id)
	if err != nil {
		return labourer.LabourerResponse{}, err
	}
	return toResponse(lab), nil
}

func (s *LabourerServiceImpl) List(ctx context.Context, filter labourer.LabourerFilter) (labourer.ListLabourerResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	labs, total, err := s.labourerRepo.List(ctx, filter)
	if err != nil {
		return labourer.ListLabourerResponse{}, err
	}

	resp := labourer.ListLabourerResponse{
		Data:       make([]labourer.LabourerResponse, 0, len(labs)),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, lab := range labs {
		resp.Data = append(resp.Data, toResponse(lab))
	}
	return resp, nil
}

func (s *LabourerServiceImpl) Update(ctx context.Context, id string, req labourer.UpdateLabourerRequest) (labourer.LabourerResponse, error) {
	if err := req.Validate(); err != nil {
		return labourer.LabourerResponse{}, err
	}

	lab, err := s.labourerRepo.GetByID(ctx, id)
	if err != nil {
		return labourer.LabourerResponse{}, err
	}

	if req.FullName != nil {
		lab.FullName = *req.FullName
	}
	if req.FatherName != nil {
		lab.FatherName = req.FatherName
	}
	if req.Mobile != nil {
		lab.Mobile = req.Mobile
	}
	if req.AadhaarNumber != nil {
		lab.AadhaarNumber = req.AadhaarNumber
	}
	if req.PANNumber != nil {
		lab.PANNumber = req.PANNumber
	}
	if req.DLNumber != nil {
		lab.DLNumber = req.DLNumber
	}
	if req.AadhaarDocURL != nil {
		lab.AadhaarDocURL = req.AadhaarDocURL
	}
	if req.PANDocURL != nil {
		lab.PANDocURL = req.PANDocURL
	}
	if req.DLDocURL != nil {
		lab.DLDocURL = req.DLDocURL
	}
	if req.DailySalary != nil {
		lab.DailySalary = req.DailySalary
	}
	if req.ProfilePhotoURL != nil {
		lab.ProfilePhotoURL = req.ProfilePhotoURL
	}
	if req.FaceScanDataURI != nil {
		lab.FaceScanDataURI = req.FaceScanDataURI
	}
	if req.CohortGroup != nil {
		lab.CohortGroup = req.CohortGroup
	}

	if err := s.labourerRepo.Update(ctx, lab); err != nil {
		return labourer.LabourerResponse{}, err
	}
	return toResponse(lab), nil
}

// Delete refuses while a loan balance is outstanding; the ledger would lose
// its anchor otherwise.
func (s *LabourerServiceImpl) Delete(ctx context.Context, id string) error {
	lab, err := s.labourerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !lab.LoanBalance.IsZero() {
		return labourer.ErrHasOpenLoan
	}
	return s.labourerRepo.Delete(ctx, id)
}
