package security

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidatePathWithinDirectory checks that filePath resolves inside safeDir,
// following symlinks on both sides so a link cannot be used to escape.
// Neither path needs to exist yet; missing tails are resolved against their
// nearest existing ancestor.
func ValidatePathWithinDirectory(filePath, safeDir string) error {
	absPath, err := filepath.Abs(filepath.Clean(filePath))
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	absSafeDir, err := filepath.Abs(safeDir)
	if err != nil {
		return fmt.Errorf("failed to resolve safe directory path: %w", err)
	}

	canonicalPath := canonicalize(absPath)
	canonicalSafeDir := canonicalize(absSafeDir)

	relPath, err := filepath.Rel(canonicalSafeDir, canonicalPath)
	if err != nil {
		return fmt.Errorf("path is outside safe directory: %w", err)
	}

	// Reject paths that escape the safe directory
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) || filepath.IsAbs(relPath) {
		return fmt.Errorf("path traversal detected: %s attempts to escape %s", filePath, safeDir)
	}

	return nil
}

// canonicalize resolves symlinks in an absolute path. When the path does not
// exist, the nearest existing ancestor is resolved and the missing tail is
// re-attached, so /tmp/evil-link/new.txt with evil-link -> /etc still
// resolves under /etc.
func canonicalize(absPath string) string {
	if resolved, err := filepath.EvalSymlinks(absPath); err == nil {
		return resolved
	}
	for dir := filepath.Dir(absPath); ; dir = filepath.Dir(dir) {
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			rel, _ := filepath.Rel(dir, absPath)
			return filepath.Join(resolved, rel)
		}
		if dir == filepath.Dir(dir) {
			return absPath
		}
	}
}

// ResolveExportDir returns the directory an export named dir should be
// written to. Relative names are taken under root, "" and "." mean root
// itself, and absolute paths are accepted only when they lie inside root.
// Nothing is created.
func ResolveExportDir(root, dir string) (string, error) {
	if root == "" {
		return "", fmt.Errorf("export root is not configured")
	}
	target := filepath.Clean(dir)
	if !filepath.IsAbs(target) {
		target = filepath.Join(root, target)
	}
	if err := ValidatePathWithinDirectory(target, root); err != nil {
		return "", fmt.Errorf("export dir %q: %w", dir, err)
	}
	return target, nil
}
