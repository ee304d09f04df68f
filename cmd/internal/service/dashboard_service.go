package service

import (
	"conesites/cmd/internal/contract"
	"conesites/cmd/internal/domain/store"
)

type DashboardStore interface {
	Totals() store.Totals
	StatusCounts() []store.StatusBucket
	SelectedTypeCounts() []store.TypeBucket
}

type DashboardService struct {
	Store DashboardStore
}

func NewDashboardService(st DashboardStore) *DashboardService {
	return &DashboardService{Store: st}
}

func (s *DashboardService) GetDashboard() *contract.DashboardResponse {
	totals := s.Store.Totals()
	statuses := s.Store.StatusCounts()
	types := s.Store.SelectedTypeCounts()

	resp := &contract.DashboardResponse{
		Totals: &contract.DashboardTotals{
			Sites:                totals.Sites,
			InNegotiation:        totals.InNegotiation,
			InLicensing:          totals.InLicensing,
			ReadyForConstruction: totals.ReadyForConstruction,
		},
		SitesByStatus: make([]*contract.StatusCount, len(statuses)),
		SelectedTypes: make([]*contract.TypeCount, len(types)),
	}

	for i, b := range statuses {
		resp.SitesByStatus[i] = &contract.StatusCount{
			Status:   string(b.Status),
			Name:     b.Name,
			FullName: b.FullName,
			Count:    b.Count,
		}
	}
	for i, b := range types {
		resp.SelectedTypes[i] = &contract.TypeCount{Name: b.Name, Value: b.Value}
	}
	return resp
}
