//go:build !unix

package photoview

func cellSize() (cellW, cellH int) {
	return 8, 16
}
