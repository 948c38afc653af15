package walker

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultMaxFileSize is the largest email file read (256 KB).
const DefaultMaxFileSize int64 = 256 << 10

// FileInfo describes one email file to rewrite.
type FileInfo struct {
	Path        string // Path as resolved from the arguments.
	Rel         string // Path relative to the directory or glob base it was found under.
	Size        int64  // File size in bytes.
	ContentHash string // SHA-256 hex digest of the file content.
}

// Config controls how Resolve expands its arguments.
type Config struct {
	Exclude     []string // Glob patterns; matching files are skipped.
	MaxFileSize int64    // Files larger than this are skipped (0 = use default).
}

// Resolve expands file, directory and glob arguments into the list of email
// files to process, in argument order. Explicitly named files must exist and
// be readable text; files found through a directory or glob are skipped
// quietly when they are not. Files with identical content are kept once.
func Resolve(args []string, cfg Config) ([]FileInfo, error) {
	maxSize := cfg.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	r := &resolver{cfg: cfg, maxSize: maxSize, seen: make(map[string]bool)}

	for _, arg := range args {
		if IsPattern(arg) {
			matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("walker: bad pattern %q: %w", arg, err)
			}
			base, _ := doublestar.SplitPattern(filepath.ToSlash(arg))
			for _, m := range matches {
				r.add(m, relTo(filepath.FromSlash(base), m), false)
			}
			continue
		}

		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("walker: %w", err)
		}
		if info.IsDir() {
			if err := r.walkDir(arg); err != nil {
				return nil, err
			}
			continue
		}
		if err := r.add(arg, filepath.Base(arg), true); err != nil {
			return nil, err
		}
	}

	return r.files, nil
}

type resolver struct {
	cfg     Config
	maxSize int64
	seen    map[string]bool
	files   []FileInfo
}

func (r *resolver) walkDir(root string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Skip entries we cannot read instead of aborting.
			return nil
		}
		if d.IsDir() {
			if path != root && shouldExcludeDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !isEmailFile(d.Name()) {
			return nil
		}
		r.add(path, relTo(root, path), false)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walker: traversal: %w", err)
	}
	return nil
}

// add records path. With strict set, a file that cannot be used is an error.
func (r *resolver) add(path, rel string, strict bool) error {
	fail := func(format string, a ...any) error {
		if !strict {
			return nil
		}
		return fmt.Errorf("walker: "+format, a...)
	}

	if MatchesExclude(path, r.cfg.Exclude) {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fail("%w", err)
	}
	if !info.Mode().IsRegular() {
		return fail("%s is not a regular file", path)
	}
	if info.Size() > r.maxSize {
		return fail("%s is larger than %d bytes", path, r.maxSize)
	}
	if isBinary(path) {
		return fail("%s does not look like a text file", path)
	}

	hash, err := hashFile(path)
	if err != nil {
		return fail("hashing %s: %w", path, err)
	}
	if r.seen[hash] {
		return nil
	}
	r.seen[hash] = true

	r.files = append(r.files, FileInfo{
		Path:        path,
		Rel:         rel,
		Size:        info.Size(),
		ContentHash: hash,
	})
	return nil
}

// relTo returns path relative to base, falling back to the base name.
func relTo(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.Base(path)
	}
	return rel
}

// isBinary reads the first 512 bytes of a file and checks for NUL bytes.
func isBinary(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return true // treat unreadable files as binary
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return true
	}

	for i := 0; i < n; i++ {
		if buf[i] == 0 {
			return true
		}
	}
	return false
}

// hashFile computes the SHA-256 digest of the given file.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
