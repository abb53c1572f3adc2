package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/yalue/image_utils"
)

var _ i.MazeEncoder = &PNG{}

// The number of pixels across, in a square cell. Must be at least 5.
const cellPixels = 9

// Default margin around the maze, in pixels.
const defaultBorder = 4

var (
	wallColor    = color.Black
	floorColor   = color.White
	visitedColor = color.RGBA{R: 230, G: 20, B: 20, A: 255}
	startColor   = color.RGBA{R: 40, G: 180, B: 70, A: 255}
	endColor     = color.RGBA{R: 100, G: 120, B: 255, A: 255}
)

// PNG renders the maze as a PNG image: walls in black, the start in green,
// the end in blue and visited cells in red.
type PNG struct {
	Border int // blank margin in pixels; 0 uses the default
}

// ContentType implements i.MazeEncoder.
func (p *PNG) ContentType() string {
	return "image/png"
}

// MarshalMaze implements i.MazeEncoder.
func (p *PNG) MarshalMaze(m *maze.Maze) ([]byte, error) {
	border := p.Border
	if border <= 0 {
		border = defaultBorder
	}

	pic := &mazeImage{m: m}
	bounds := pic.Bounds()
	background := image.NewRGBA(image.Rect(0, 0, bounds.Dx()+2*border, bounds.Dy()+2*border))
	draw.Draw(background, background.Bounds(), image.NewUniform(floorColor), image.Point{}, draw.Src)

	composite := image_utils.NewCompositeImage()
	if err := composite.AddImage(background, image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("adding background: %w", err)
	}
	if err := composite.AddImage(image_utils.ToRGBA(pic), image.Pt(border, border)); err != nil {
		return nil, fmt.Errorf("adding maze: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, image_utils.ToRGBA(composite)); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// mazeImage adapts a maze to image.Image, one cellPixels square per cell.
type mazeImage struct {
	m *maze.Maze
}

func (mi *mazeImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (mi *mazeImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, mi.m.Width()*cellPixels, mi.m.Height()*cellPixels)
}

func (mi *mazeImage) At(x, y int) color.Color {
	if !image.Pt(x, y).In(mi.Bounds()) {
		return color.Transparent
	}
	cell, err := mi.m.Cell(maze.Position{X: x / cellPixels, Y: y / cellPixels})
	if err != nil {
		return color.Transparent
	}
	return cellAt(cell, x%cellPixels, y%cellPixels)
}

// cellAt colors pixel (x, y) of a single cell.
func cellAt(c maze.Cell, x, y int) color.Color {
	last := cellPixels - 1

	// Corners are always drawn so that wall segments join up.
	if (x == 0 || x == last) && (y == 0 || y == last) {
		return wallColor
	}
	switch {
	case x == 0:
		return wallOr(c, maze.West)
	case x == last:
		return wallOr(c, maze.East)
	case y == 0:
		return wallOr(c, maze.North)
	case y == last:
		return wallOr(c, maze.South)
	}

	// Markers fill the interior, more than one pixel away from the walls.
	if x <= 1 || x >= last-1 || y <= 1 || y >= last-1 {
		return floorColor
	}
	switch {
	case c.Start:
		return startColor
	case c.End:
		return endColor
	case c.Visited:
		return visitedColor
	}
	return floorColor
}

func wallOr(c maze.Cell, d maze.Direction) color.Color {
	if c.IsOpen(d) {
		return floorColor
	}
	return wallColor
}
