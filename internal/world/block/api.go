package block

import (
	"github.com/annel0/voxel-sandbox/internal/vec"
)

// BlockAPI определяет интерфейс для взаимодействия блоков с игровым миром
// во время тика. Координаты вне мира допустимы: чтение даёт воздух,
// запись игнорируется.
type BlockAPI interface {
	// GetBlockID возвращает идентификатор блока в указанной позиции.
	GetBlockID(pos vec.Vec3) BlockID

	// SetBlock устанавливает блок и рассылает уведомления об изменении.
	SetBlock(pos vec.Vec3, id BlockID)

	// IsLit сообщает, открыт ли блок небу (y не ниже верхнего твёрдого блока столбца).
	IsLit(pos vec.Vec3) bool
}
