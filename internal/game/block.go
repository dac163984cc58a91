package game

import "fmt"

// Grid layout of the block field
const (
	BlockRows    = 4
	BlockCols    = 8
	BlockWidth   = 60.0
	BlockHeight  = 20.0
	BlockPitchX  = 64.0
	BlockPitchY  = 24.0
	BlockOffsetX = 65.0
	BlockOffsetY = 35.0
)

type Block struct {
	Rect
	Row, Col int
	Active   bool
}

// Deactivate destroys the block. It never comes back.
func (b *Block) Deactivate() {
	b.Active = false
}

// Layout describes a rows x cols grid of equally sized blocks
type Layout struct {
	Rows, Cols       int
	Width, Height    float64
	PitchX, PitchY   float64
	OffsetX, OffsetY float64
}

// DefaultLayout is the 4x8 field of the classic screen
func DefaultLayout() Layout {
	return Layout{
		Rows:    BlockRows,
		Cols:    BlockCols,
		Width:   BlockWidth,
		Height:  BlockHeight,
		PitchX:  BlockPitchX,
		PitchY:  BlockPitchY,
		OffsetX: BlockOffsetX,
		OffsetY: BlockOffsetY,
	}
}

// BlockField is the grid of targets, stored row-major
type BlockField struct {
	layout Layout
	blocks []Block
}

// NewBlockField lays out all blocks active
func NewBlockField(l Layout) *BlockField {
	blocks := make([]Block, 0, l.Rows*l.Cols)
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			blocks = append(blocks, Block{
				Rect: Rect{
					X:      l.PitchX*float64(col) + l.OffsetX,
					Y:      l.PitchY*float64(row) + l.OffsetY,
					Width:  l.Width,
					Height: l.Height,
				},
				Row:    row,
				Col:    col,
				Active: true,
			})
		}
	}
	return &BlockField{layout: l, blocks: blocks}
}

// Len is the total number of blocks, active or not
func (f *BlockField) Len() int {
	return len(f.blocks)
}

// At returns the block at (row, col). Panics when out of range: the grid
// never changes shape after creation.
func (f *BlockField) At(row, col int) *Block {
	if row < 0 || row >= f.layout.Rows || col < 0 || col >= f.layout.Cols {
		panic(fmt.Sprintf("block (%d,%d) outside %dx%d grid", row, col, f.layout.Rows, f.layout.Cols))
	}
	return &f.blocks[row*f.layout.Cols+col]
}

// Each calls fn for every active block in row-major order
func (f *BlockField) Each(fn func(b *Block)) {
	for i := range f.blocks {
		if f.blocks[i].Active {
			fn(&f.blocks[i])
		}
	}
}

func (f *BlockField) ActiveCount() int {
	n := 0
	f.Each(func(*Block) { n++ })
	return n
}

// Active returns copies of the active blocks
func (f *BlockField) Active() []Block {
	out := make([]Block, 0, len(f.blocks))
	f.Each(func(b *Block) { out = append(out, *b) })
	return out
}
