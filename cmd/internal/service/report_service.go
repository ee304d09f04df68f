package service

import (
	"context"

	"conesites/cmd/internal/contract"
	"conesites/cmd/internal/domain/entity"
	"conesites/cmd/internal/infrastructure/aws/storage"
	"conesites/cmd/internal/infrastructure/report"
	"conesites/cmd/internal/utils/apierror"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type ReportStore interface {
	Sites() []entity.Site
	Candidates() []entity.Candidate
	Clients() []entity.Client
	Projects() []entity.Project
	Collaborators() []entity.Collaborator
}

type ReportService struct {
	Store ReportStore

	// Storage is nil when no bucket is configured.
	Storage storage.S3Client
}

func NewReportService(st ReportStore, s3Client storage.S3Client) *ReportService {
	return &ReportService{
		Store:   st,
		Storage: s3Client,
	}
}

// RenderReport returns the rendered report body and the format it was rendered in.
func (s *ReportService) RenderReport(kind, format string) ([]byte, report.Format, apierror.ErrorResponse) {
	rep, outFmt, apierr := s.build(kind, format)
	if apierr != nil {
		return nil, "", apierr
	}

	body, err := rep.Render(outFmt)
	if err != nil {
		log.Errorf("failed to render %s report as %s: %v", kind, outFmt, err)
		return nil, "", apierror.InternalServerError
	}
	return body, outFmt, nil
}

func (s *ReportService) ExportReport(ctx context.Context, kind, format string) (*contract.ReportExportResponse, apierror.ErrorResponse) {
	if s.Storage == nil {
		return nil, apierror.ExportUnavailableError
	}

	rep, outFmt, apierr := s.build(kind, format)
	if apierr != nil {
		return nil, apierr
	}

	body, err := rep.Render(outFmt)
	if err != nil {
		log.Errorf("failed to render %s report as %s: %v", kind, outFmt, err)
		return nil, apierror.InternalServerError
	}

	name := string(rep.Kind) + "/" + uuid.NewString() + "." + outFmt.Extension()
	key, err := s.Storage.UploadFile(ctx, body, name, outFmt.ContentType())
	if err != nil {
		log.Errorf("failed to export %s report: %v", kind, err)
		return nil, apierror.InternalServerError
	}

	return &contract.ReportExportResponse{
		Kind:   string(rep.Kind),
		Format: string(outFmt),
		Key:    key,
		Rows:   rep.Count(),
	}, nil
}

func (s *ReportService) build(kind, format string) (*report.Report, report.Format, apierror.ErrorResponse) {
	k, ok := report.ParseKind(kind)
	if !ok {
		return nil, "", apierror.InvalidReportKindError
	}

	f, ok := report.ParseFormat(format)
	if !ok {
		return nil, "", apierror.InvalidReportFmtError
	}

	var rep *report.Report
	switch k {
	case report.KindSites:
		rep = report.Sites(s.Store.Sites())
	case report.KindCandidates:
		rep = report.Candidates(s.Store.Candidates())
	case report.KindClients:
		rep = report.Clients(s.Store.Clients())
	case report.KindProjects:
		rep = report.Projects(s.Store.Projects())
	case report.KindCollaborators:
		rep = report.Collaborators(s.Store.Collaborators())
	}
	return rep, f, nil
}
