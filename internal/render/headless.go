package render

// HeadlessBackend - Backend без GPU: считает загрузки и вызовы отрисовки.
// Используется сервером без окна и в тестах.
type HeadlessBackend struct {
	Uploads       int
	UploadedBytes int
	Draws         int
	Indices       int
}

// Upload учитывает загруженный меш.
func (h *HeadlessBackend) Upload(_ *Chunk, _ Layer, mesh *Mesh) {
	h.Uploads++
	h.UploadedBytes += len(mesh.Data)
}

// Draw учитывает индексированную отрисовку меша.
func (h *HeadlessBackend) Draw(_ *Chunk, _ Layer, mesh *Mesh) {
	h.Draws++
	h.Indices += mesh.IndexCount()
}

// Reset обнуляет счётчики.
func (h *HeadlessBackend) Reset() {
	*h = HeadlessBackend{}
}
