package block

import "fmt"

// BlockID представляет идентификатор блока. Ячейка сетки хранит ровно один байт.
type BlockID uint8

// Константы ID блоков
const (
	AirBlockID         BlockID = iota // 0
	StoneBlockID                      // 1
	GrassBlockID                      // 2
	DirtBlockID                       // 3
	CobblestoneBlockID                // 4
	PlanksBlockID                     // 5
)

// MaxKinds - ёмкость таблицы видов блоков.
const MaxKinds = 256

var (
	registry   [MaxKinds]Kind
	registered [MaxKinds]bool
)

func init() {
	// Воздух существует всегда: у него нет граней и тика.
	registry[AirBlockID] = Kind{ID: AirBlockID, Name: "Air"}
	registered[AirBlockID] = true
}

// Register добавляет вид блока в таблицу. Вызывается только из init();
// после старта таблица используется только на чтение.
func Register(kind Kind) {
	if registered[kind.ID] && kind.ID != AirBlockID {
		panic(fmt.Sprintf("блок %d (%s) уже зарегистрирован", kind.ID, registry[kind.ID].Name))
	}
	registry[kind.ID] = kind
	registered[kind.ID] = true
}

// Get возвращает вид блока для указанного ID
func Get(id BlockID) (Kind, bool) {
	return registry[id], registered[id]
}

// IsValidBlockID проверяет, является ли ID допустимым идентификатором блока
func IsValidBlockID(id BlockID) bool {
	return registered[id]
}

// NeedsTick сообщает, есть ли у вида блока поведение случайного тика.
func NeedsTick(id BlockID) bool {
	return registry[id].Tick != nil
}

// TextureIndex возвращает индекс текстуры атласа для грани блока id.
func TextureIndex(id BlockID, face int) int {
	return registry[id].Textures[face]
}
