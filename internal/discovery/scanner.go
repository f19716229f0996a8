package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"fossilgen/internal/domain"
)

// Scanner finds test sources inside marked directories
type Scanner struct {
	dirPrefix  string
	filePrefix string
}

// NewScanner creates a new Scanner for the given directory and file name prefixes
func NewScanner(dirPrefix, filePrefix string) *Scanner {
	return &Scanner{dirPrefix: dirPrefix, filePrefix: filePrefix}
}

// Scan reads every test source with the given extension under root, sorted by path
func (s *Scanner) Scan(root, extension string) ([]domain.SourceFile, error) {
	var files []domain.SourceFile
	err := s.ScanEach(root, extension, func(file domain.SourceFile) error {
		files = append(files, file)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files, nil
}

// ScanEach walks root and hands each matching file to fn as soon as it is read.
// Every directory is descended into; only files sitting directly inside a
// prefixed directory are considered. The first read or callback error stops the walk.
func (s *Scanner) ScanEach(root, extension string, fn func(domain.SourceFile) error) error {
	// Clean and validate the root path
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("test path does not exist: %s", root)
	}
	if !info.IsDir() {
		return fmt.Errorf("test path is not a directory: %s", root)
	}

	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		// Symlinked directories are not followed; a dangling link fails on read
		if d.Type()&fs.ModeSymlink != 0 {
			if target, err := os.Stat(path); err == nil && target.IsDir() {
				return nil
			}
		}

		if !s.inMarkedDir(path) || !s.Matches(d.Name(), extension) {
			return nil
		}

		file, err := readSource(path)
		if err != nil {
			return err
		}
		return fn(file)
	})
}

// Matches reports whether a file name looks like a test source with the given extension
func (s *Scanner) Matches(name, extension string) bool {
	return strings.HasPrefix(name, s.filePrefix) && strings.HasSuffix(name, extension)
}

// inMarkedDir reports whether the file's parent directory carries the directory prefix
func (s *Scanner) inMarkedDir(path string) bool {
	dir := filepath.Dir(path)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return strings.HasPrefix(filepath.Base(dir), s.dirPrefix)
}

func readSource(path string) (domain.SourceFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.SourceFile{}, fmt.Errorf("error reading file %s: %w", path, err)
	}
	if !utf8.Valid(content) {
		return domain.SourceFile{}, fmt.Errorf("error decoding file %s: not valid UTF-8 text", path)
	}
	return domain.SourceFile{Path: path, Content: string(content)}, nil
}
