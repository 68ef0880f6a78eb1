// Package server is the gRPC boundary over the job pipeline.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	mediafetchv1 "mediafetch/gen/mediafetch/v1"
	"mediafetch/internal/common"
	"mediafetch/internal/core"
	"mediafetch/internal/export"
)

// watchInterval paces status polling for WatchJob streams.
const watchInterval = 500 * time.Millisecond

type MediaFetchService struct {
	mediafetchv1.UnimplementedMediaFetchServiceServer
	orch   *core.Orchestrator
	export *export.Service
	admin  *AdminService
	logger *slog.Logger
}

func NewMediaFetchService(orch *core.Orchestrator, exportSvc *export.Service, admin *AdminService, logger *slog.Logger) *MediaFetchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MediaFetchService{orch: orch, export: exportSvc, admin: admin, logger: logger}
}

func (s *MediaFetchService) AdminGenerateKey(ctx context.Context, req *mediafetchv1.AdminGenerateKeyRequest) (*mediafetchv1.AdminGenerateKeyResponse, error) {
	return s.admin.AdminGenerateKey(ctx, req)
}

func (s *MediaFetchService) AdminRevokeKey(ctx context.Context, req *mediafetchv1.AdminRevokeKeyRequest) (*mediafetchv1.AdminRevokeKeyResponse, error) {
	return s.admin.AdminRevokeKey(ctx, req)
}

func (s *MediaFetchService) SubmitJob(ctx context.Context, req *mediafetchv1.SubmitJobRequest) (*mediafetchv1.SubmitJobResponse, error) {
	if req.GetUrl() == "" {
		return nil, common.InvalidArgumentError("url is required")
	}
	jobID, err := s.orch.Submit(ctx, core.SubmitRequest{
		URL:           req.GetUrl(),
		Platform:      req.GetPlatform(),
		CookieBlob:    req.GetCookieBlob(),
		VideoFormatID: req.GetVideoFormatId(),
		AudioFormatID: req.GetAudioFormatId(),
	})
	if err != nil {
		s.logger.Warn("submit failed", "url", req.GetUrl(), "error", err)
		return nil, common.GRPCError(err)
	}
	return &mediafetchv1.SubmitJobResponse{JobId: jobID.String()}, nil
}

func (s *MediaFetchService) GetJobStatus(ctx context.Context, req *mediafetchv1.GetJobStatusRequest) (*mediafetchv1.GetJobStatusResponse, error) {
	jobID, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}
	snap, err := s.orch.Status(jobID)
	if err != nil {
		return nil, common.GRPCError(err)
	}
	return statusResponse(snap), nil
}

func (s *MediaFetchService) GetJobResult(ctx context.Context, req *mediafetchv1.GetJobResultRequest) (*mediafetchv1.GetJobResultResponse, error) {
	jobID, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}
	path, err := s.orch.Result(jobID)
	if err != nil {
		return nil, common.GRPCError(err)
	}
	snap, err := s.orch.Status(jobID)
	if err != nil {
		return nil, common.GRPCError(err)
	}
	return &mediafetchv1.GetJobResultResponse{Path: path, SizeBytes: snap.ResultSize}, nil
}

func (s *MediaFetchService) CancelJob(ctx context.Context, req *mediafetchv1.CancelJobRequest) (*mediafetchv1.CancelJobResponse, error) {
	jobID, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}
	if err := s.orch.Cancel(jobID); err != nil {
		return nil, common.GRPCError(err)
	}
	return &mediafetchv1.CancelJobResponse{}, nil
}

// WatchJob streams status snapshots until the job reaches a terminal state
// or the client goes away.
func (s *MediaFetchService) WatchJob(req *mediafetchv1.WatchJobRequest, stream mediafetchv1.MediaFetchService_WatchJobServer) error {
	jobID, err := parseJobID(req.GetJobId())
	if err != nil {
		return err
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	var last *mediafetchv1.GetJobStatusResponse
	for {
		snap, err := s.orch.Status(jobID)
		if err != nil {
			return common.GRPCError(err)
		}
		resp := statusResponse(snap)
		if last == nil || last.GetState() != resp.GetState() ||
			last.GetProgress().GetVideoDone() != resp.GetProgress().GetVideoDone() ||
			last.GetProgress().GetAudioDone() != resp.GetProgress().GetAudioDone() ||
			last.GetProgress().GetMergeDone() != resp.GetProgress().GetMergeDone() {
			if err := stream.Send(resp); err != nil {
				return err
			}
			last = resp
		}
		if snap.Status.Terminal() {
			return nil
		}
		select {
		case <-stream.Context().Done():
			return stream.Context().Err()
		case <-ticker.C:
		}
	}
}

func (s *MediaFetchService) ListFormats(ctx context.Context, req *mediafetchv1.ListFormatsRequest) (*mediafetchv1.ListFormatsResponse, error) {
	if req.GetUrl() == "" {
		return nil, common.InvalidArgumentError("url is required")
	}
	md, err := s.orch.ListFormats(ctx, req.GetUrl())
	if err != nil {
		s.logger.Warn("list formats failed", "url", req.GetUrl(), "error", err)
		return nil, common.GRPCError(err)
	}

	resp := &mediafetchv1.ListFormatsResponse{
		Title:           md.Title,
		DurationSeconds: md.Duration,
		Thumbnail:       md.Thumbnail,
	}
	for _, v := range md.Videos {
		resp.Videos = append(resp.Videos, &mediafetchv1.VideoFormat{
			Id:          v.ID,
			Resolution:  v.Resolution,
			Label:       v.Label,
			Ext:         v.Ext,
			BitrateKbps: int32(v.Bitrate),
			Height:      int32(v.Height),
			HasAudio:    v.HasAudio,
		})
	}
	for _, a := range md.Audios {
		resp.Audios = append(resp.Audios, &mediafetchv1.AudioFormat{
			Id:          a.ID,
			Language:    a.Language,
			BitrateKbps: int32(a.Bitrate),
			Ext:         a.Ext,
			Label:       a.Label,
		})
	}
	return resp, nil
}

func (s *MediaFetchService) ExportJobs(ctx context.Context, req *mediafetchv1.ExportJobsRequest) (*mediafetchv1.ExportJobsResponse, error) {
	if s.export == nil {
		return nil, common.InternalError("export service unavailable")
	}
	parseDate := func(v string) (*time.Time, error) {
		if v == "" {
			return nil, nil
		}
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", v, err)
		}
		return &t, nil
	}
	from, err := parseDate(req.GetFromDate())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}
	to, err := parseDate(req.GetToDate())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}

	xlsx, err := s.export.ExportJobsXLSX(ctx, from, to)
	if err != nil {
		s.logger.Warn("export failed", "error", err)
		return nil, common.InternalError("export failed")
	}
	return &mediafetchv1.ExportJobsResponse{Xlsx: xlsx}, nil
}

func parseJobID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError(fmt.Sprintf("invalid job id %q", raw))
	}
	return id, nil
}

func statusResponse(snap core.Snapshot) *mediafetchv1.GetJobStatusResponse {
	resp := &mediafetchv1.GetJobStatusResponse{
		JobId: snap.ID.String(),
		State: string(snap.Status),
		Title: snap.Title,
		Progress: &mediafetchv1.JobProgress{
			VideoDone: snap.Progress.VideoDone,
			AudioDone: snap.Progress.AudioDone,
			MergeDone: snap.Progress.MergeDone,
		},
		CreatedAt: snap.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !snap.FinishedAt.IsZero() {
		resp.FinishedAt = snap.FinishedAt.UTC().Format(time.RFC3339Nano)
	}
	if snap.ErrKind != "" {
		resp.Error = &mediafetchv1.JobError{
			Kind:    string(snap.ErrKind),
			Message: snap.ErrMessage,
		}
	}
	return resp
}
