package render

// Layer - слой меша чанка. Грани делятся по освещённости, а не по материалу.
type Layer int

const (
	// LayerLit - грани, полностью освещённые небом.
	LayerLit Layer = iota
	// LayerShaded - грани в тени.
	LayerShaded

	layerCount = 2
)

func (l Layer) String() string {
	if l == LayerLit {
		return "lit"
	}
	return "shaded"
}

// Mesh - готовая геометрия одного слоя чанка.
type Mesh struct {
	VertexCount int
	Data        []byte
}

// Quads возвращает число четырёхугольников в меше.
func (m *Mesh) Quads() int { return m.VertexCount / 4 }

// IndexCount возвращает число индексов для отрисовки треугольниками.
func (m *Mesh) IndexCount() int { return m.Quads() * 6 }

// QuadIndices разворачивает quads четырёхугольников в треугольники:
// вершины [0,1,2,3] каждого квада дают [0,1,2] и [2,3,0].
func QuadIndices(quads int) []uint32 {
	indices := make([]uint32, 0, quads*6)
	for q := 0; q < quads; q++ {
		base := uint32(q * 4)
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}
	return indices
}
