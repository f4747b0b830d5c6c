package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/amethystakira/KiranaDash/internal/domain/repository"
)

// UseCase exportación e importación de respaldos sobre el libro diario.
type UseCase struct {
	repo repository.LedgerRepository
	now  func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.LedgerRepository) *UseCase {
	return &UseCase{repo: repo, now: time.Now}
}

// Export serializa el estado completo y devuelve el contenido del archivo
// junto con el nombre sugerido para la descarga.
func (uc *UseCase) Export(ctx context.Context) ([]byte, string, error) {
	snap, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("backup: snapshot: %w", err)
	}

	now := uc.now()
	raw, err := Serialize(snap, now)
	if err != nil {
		return nil, "", err
	}
	return raw, FileName(now), nil
}

// Import valida el documento y aplica el parche resultante. Si el documento es
// inválido el estado vivo no se modifica.
func (uc *UseCase) Import(ctx context.Context, raw []byte) error {
	patch, err := Deserialize(raw)
	if err != nil {
		return err
	}
	if err := uc.repo.ApplyRestore(ctx, *patch); err != nil {
		return fmt.Errorf("backup: aplicar restauración: %w", err)
	}
	return nil
}
