package summarizer

// splitChunks partitions text into contiguous spans of at most size
// characters (runes), in order, covering the text exactly once. The split
// is purely count-based; mid-sentence cuts are smoothed by the final
// integration pass.
func splitChunks(text string, size int) []string {
	runes := []rune(text)
	if size <= 0 || len(runes) <= size {
		return []string{text}
	}

	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
