package render

import "math"

// TileSize is the edge length of one grid cell in world units.
const TileSize = 16

// VerticesPerQuad is the number of vertices emitted per cell: two triangles.
const VerticesPerQuad = 6

// Vertex is one corner of a textured triangle.
type Vertex struct {
	Position [2]float32
	UV       [2]float32
}

// Quad returns the two triangles covering grid cell (x, y), textured with
// atlas cell id. Atlas rows run top to bottom while V runs bottom to top.
func Quad(id uint8, x, y int) [VerticesPerQuad]Vertex {
	x0 := float32(x * TileSize)
	x1 := float32((x + 1) * TileSize)
	y0 := float32(y * TileSize)
	y1 := float32((y + 1) * TileSize)

	col := id % AtlasColumns
	row := id >> 4
	u0 := float32(col) / AtlasColumns
	u1 := float32(col+1) / AtlasColumns
	vTop := 1 - float32(row)/AtlasColumns
	vBottom := 1 - float32(row+1)/AtlasColumns

	return [VerticesPerQuad]Vertex{
		{Position: [2]float32{x0, y0}, UV: [2]float32{u0, vBottom}},
		{Position: [2]float32{x1, y0}, UV: [2]float32{u1, vBottom}},
		{Position: [2]float32{x0, y1}, UV: [2]float32{u0, vTop}},
		{Position: [2]float32{x1, y0}, UV: [2]float32{u1, vBottom}},
		{Position: [2]float32{x1, y1}, UV: [2]float32{u1, vTop}},
		{Position: [2]float32{x0, y1}, UV: [2]float32{u0, vTop}},
	}
}

// DecodeQuad recovers the grid cell and atlas cell id of a quad produced by
// Quad from its first vertex.
func DecodeQuad(first Vertex) (x, y int, id uint8) {
	x = int(math.Floor(float64(first.Position[0]) / TileSize))
	y = int(math.Floor(float64(first.Position[1]) / TileSize))
	col := int(math.Round(float64(first.UV[0]) * AtlasColumns))
	row := int(math.Round(float64(1-first.UV[1])*AtlasColumns)) - 1
	return x, y, uint8(row<<4 | col)
}
