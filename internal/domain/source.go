package domain

// SourceFile is a test source selected by the scanner, read once and discarded after extraction
type SourceFile struct {
	Path    string // Path to the file, rooted at the scan root
	Content string // Full text of the file
}
