package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/news-api/internal/apperrors"
	"github.com/rs/zerolog"
)

// docsService serves the endpoint documentation file
type docsService struct {
	path string
	log  zerolog.Logger
}

func newDocsService(path string, log zerolog.Logger) *docsService {
	return &docsService{
		path: path,
		log:  log.With().Str("service", "docs").Logger(),
	}
}

// Endpoints reads the documentation file on every call so edits show up
// without a restart.
func (s *docsService) Endpoints(ctx context.Context) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("Failed to read endpoints file")
		return nil, apperrors.Wrap(err, apperrors.KindUnexpected, "failed to read endpoints file")
	}
	if !json.Valid(data) {
		return nil, apperrors.Wrap(fmt.Errorf("%s is not valid JSON", s.path), apperrors.KindUnexpected, "invalid endpoints file")
	}

	return json.RawMessage(data), nil
}
