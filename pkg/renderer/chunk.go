package renderer

// Chunk is a contiguous band of image rows rendered as one task
type Chunk struct {
	Index    int // Position of the chunk, bottom to top
	StartRow int // First row (inclusive)
	EndRow   int // Last row (exclusive)
}

// Rows returns the number of rows in the chunk
func (c Chunk) Rows() int {
	return c.EndRow - c.StartRow
}

// SplitRows partitions height rows into chunks of rowsPerChunk rows. The
// last chunk holds the remainder.
func SplitRows(height, rowsPerChunk int) []Chunk {
	if rowsPerChunk <= 0 {
		rowsPerChunk = 1
	}

	chunks := make([]Chunk, 0, (height+rowsPerChunk-1)/rowsPerChunk)
	for start := 0; start < height; start += rowsPerChunk {
		chunks = append(chunks, Chunk{
			Index:    len(chunks),
			StartRow: start,
			EndRow:   min(start+rowsPerChunk, height),
		})
	}
	return chunks
}

// ChunkSeed returns the sampler seed for a chunk in a given pass. Every
// (pass, chunk) pair gets its own seed, so results do not depend on which
// worker renders a chunk or in what order.
func ChunkSeed(baseSeed int64, pass, numChunks, chunkIndex int) int64 {
	return baseSeed + int64(pass)*int64(numChunks) + int64(chunkIndex)
}
