package server

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	mediafetchv1 "mediafetch/gen/mediafetch/v1"
	"mediafetch/internal/common"
	"mediafetch/internal/repository"
)

const (
	apiKeyHeader    = "x-api-key"
	masterKeyHeader = "x-master-key"
)

// AdminService mints and revokes API keys; it is gated by the master key,
// not by an API key.
type AdminService struct {
	keys      repository.APIKeyRepository
	masterKey string
	logger    *slog.Logger
}

func NewAdminService(keys repository.APIKeyRepository, masterKey string, logger *slog.Logger) *AdminService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminService{keys: keys, masterKey: masterKey, logger: logger}
}

func (s *AdminService) AdminGenerateKey(ctx context.Context, _ *mediafetchv1.AdminGenerateKeyRequest) (*mediafetchv1.AdminGenerateKeyResponse, error) {
	if s.masterKey == "" {
		return nil, common.FailedPreconditionError("master key is not configured")
	}
	if metadataValue(ctx, masterKeyHeader) != s.masterKey {
		s.logger.Warn("master key rejected")
		return nil, common.UnauthenticatedError("invalid master key")
	}
	key, err := s.keys.Generate(ctx)
	if err != nil {
		return nil, common.InternalError("key generation failed")
	}
	return &mediafetchv1.AdminGenerateKeyResponse{ApiKey: key}, nil
}

func (s *AdminService) AdminRevokeKey(ctx context.Context, req *mediafetchv1.AdminRevokeKeyRequest) (*mediafetchv1.AdminRevokeKeyResponse, error) {
	if s.masterKey == "" {
		return nil, common.FailedPreconditionError("master key is not configured")
	}
	if metadataValue(ctx, masterKeyHeader) != s.masterKey {
		s.logger.Warn("master key rejected")
		return nil, common.UnauthenticatedError("invalid master key")
	}
	if req.GetApiKey() == "" {
		return nil, common.InvalidArgumentError("api_key is required")
	}
	if err := s.keys.Revoke(ctx, req.GetApiKey()); err != nil {
		return nil, common.InternalError("key revocation failed")
	}
	return &mediafetchv1.AdminRevokeKeyResponse{}, nil
}

// UnaryAuthInterceptor enforces the API key on every pipeline RPC. Health,
// reflection and admin calls pass through.
func UnaryAuthInterceptor(keys repository.APIKeyRepository, logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if exemptMethod(info.FullMethod) {
			return handler(ctx, req)
		}
		if err := checkAPIKey(ctx, keys, logger); err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

// StreamAuthInterceptor is the streaming twin of UnaryAuthInterceptor.
func StreamAuthInterceptor(keys repository.APIKeyRepository, logger *slog.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if exemptMethod(info.FullMethod) {
			return handler(srv, ss)
		}
		if err := checkAPIKey(ss.Context(), keys, logger); err != nil {
			return err
		}
		return handler(srv, ss)
	}
}

func exemptMethod(fullMethod string) bool {
	switch {
	case strings.HasPrefix(fullMethod, "/grpc.health."),
		strings.HasPrefix(fullMethod, "/grpc.reflection."),
		strings.HasSuffix(fullMethod, "/AdminGenerateKey"),
		strings.HasSuffix(fullMethod, "/AdminRevokeKey"):
		return true
	}
	return false
}

func checkAPIKey(ctx context.Context, keys repository.APIKeyRepository, logger *slog.Logger) error {
	key := metadataValue(ctx, apiKeyHeader)
	ok, err := keys.IsValid(ctx, key)
	if err != nil {
		logger.Error("api key lookup failed", "error", err)
		return common.InternalError("authentication unavailable")
	}
	if !ok {
		return common.UnauthenticatedError("missing or invalid api key")
	}
	return nil
}

func metadataValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(key)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
