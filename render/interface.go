package render

// Renderer turns cell updates into visible output
// Draw receives cells in the order they should be written; implementations
// must either draw every cell or report an error
type Renderer interface {
	Draw(cells []Cell) error
}
