package settings

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/grove/backend/internal/application/adapter"
	"github.com/grove/backend/internal/application/usecase/bootstrap"
)

// ExportDataOutput carries the serialized record for download/share. The
// format is whatever UserData serializes to, not a stable contract.
type ExportDataOutput struct {
	JSON []byte
}

// ExportDataUseCase renders the full record as indented JSON, the same blob
// the persistence layer stores.
type ExportDataUseCase struct {
	repo  adapter.RecordRepository
	clock adapter.Clock
}

// NewExportDataUseCase creates a new ExportDataUseCase instance.
func NewExportDataUseCase(repo adapter.RecordRepository, clock adapter.Clock) *ExportDataUseCase {
	return &ExportDataUseCase{repo: repo, clock: clock}
}

// Execute renders the export.
func (uc *ExportDataUseCase) Execute(ctx context.Context) (*ExportDataOutput, error) {
	data := bootstrap.LoadState(ctx, uc.repo, uc.clock)
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize user data: %w", err)
	}
	return &ExportDataOutput{JSON: raw}, nil
}
