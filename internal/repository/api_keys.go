package repository

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"

	"mediafetch/gen/ent"
	"mediafetch/gen/ent/apikey"
)

// APIKeyRepository manages boundary-layer credentials.
type APIKeyRepository interface {
	Generate(ctx context.Context) (string, error)
	IsValid(ctx context.Context, key string) (bool, error)
	Revoke(ctx context.Context, key string) error
}

type apiKeyRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewAPIKeyRepository(entc *ent.Client, log *slog.Logger) APIKeyRepository {
	if log == nil {
		log = slog.Default()
	}
	return &apiKeyRepo{ent: entc, log: log}
}

// Generate mints and stores a new URL-safe key.
func (r *apiKeyRepo) Generate(ctx context.Context) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	key := base64.RawURLEncoding.EncodeToString(raw)

	if err := r.ent.APIKey.Create().SetKey(key).Exec(ctx); err != nil {
		r.log.Error("api key create failed", "err", err)
		return "", err
	}
	r.log.Info("api key generated")
	return key, nil
}

// IsValid reports whether the key exists and is active.
func (r *apiKeyRepo) IsValid(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, nil
	}
	return r.ent.APIKey.Query().
		Where(apikey.KeyEQ(key), apikey.IsActive(true)).
		Exist(ctx)
}

// Revoke deactivates a key without deleting its audit row.
func (r *apiKeyRepo) Revoke(ctx context.Context, key string) error {
	n, err := r.ent.APIKey.Update().
		Where(apikey.KeyEQ(key)).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return err
	}
	r.log.Info("api key revoked", "matched", n)
	return nil
}
