package tempfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/tmpkeep/tmpkeep/internal/namegen"
	"github.com/tmpkeep/tmpkeep/internal/ospath"
)

// Write creates a temporary file containing the given content and returns its
// path. Nil content is rejected with ErrInvalidArgument; an empty non-nil
// slice produces an empty file. The extension may be given with or without
// the leading dot. The file is registered for automatic cleanup unless
// opt.Keep is set; a failed write is never registered.
func (m *Manager) Write(ctx context.Context, content []byte, extension string, opt *Options) (string, error) {
	if content == nil {
		return "", errors.Wrap(ErrInvalidArgument, "content is required")
	}

	ext, err := normalizeExtension(extension)
	if err != nil {
		return "", err
	}

	ts, random := namegen.Fragments()

	return m.createFile(ctx, content, opt.prefix()+ts+"-"+random+ext, opt)
}

// WriteString is like Write for string content.
func (m *Manager) WriteString(ctx context.Context, content, extension string, opt *Options) (string, error) {
	return m.Write(ctx, []byte(content), extension, opt)
}

// WriteWithPattern is like Write, except that the file name is derived by
// substituting the placeholders recognized by namegen.Expand in the
// caller-supplied pattern instead of the prefix+fragment scheme.
func (m *Manager) WriteWithPattern(ctx context.Context, content []byte, pattern string, opt *Options) (string, error) {
	if content == nil {
		return "", errors.Wrap(ErrInvalidArgument, "content is required")
	}

	if pattern == "" {
		return "", errors.Wrap(ErrInvalidArgument, "pattern is required")
	}

	return m.createFile(ctx, content, namegen.Expand(pattern), opt)
}

// Copy reads the full content of sourcePath and writes it to a new temporary
// file. When no extension is supplied, the source's own extension is used.
// A missing source is reported as ErrNotFound.
func (m *Manager) Copy(ctx context.Context, sourcePath, extension string, opt *Options) (string, error) {
	data, err := os.ReadFile(sourcePath)

	switch {
	case os.IsNotExist(err):
		return "", errors.Wrapf(ErrNotFound, "source %v", sourcePath)

	case err != nil:
		return "", errors.Wrapf(err, "unable to read %v", sourcePath)
	}

	if extension == "" {
		extension = filepath.Ext(sourcePath)
	}

	return m.Write(ctx, data, extension, opt)
}

// MkdirTemp creates a new temporary directory and returns its path, applying
// the same registration policy as Write.
func (m *Manager) MkdirTemp(ctx context.Context, opt *Options) (string, error) {
	base, createdBase, err := m.ensureDir(opt)
	if err != nil {
		return "", err
	}

	ts, random := namegen.Fragments()
	path := filepath.Join(base, opt.prefix()+ts+"-"+random)

	if err := mkdirWithMode(path, opt.dirMode()); err != nil {
		return "", errors.Wrapf(err, "unable to create temporary directory %v", path)
	}

	if !opt.keep() {
		m.track(ctx, path)

		if createdBase {
			m.track(ctx, base)
		}
	}

	return path, nil
}

func (m *Manager) createFile(ctx context.Context, content []byte, name string, opt *Options) (string, error) {
	dir, createdDir, err := m.ensureDir(opt)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)

	if err := writeFileWithMode(path, content, opt.fileMode()); err != nil {
		return "", errors.Wrapf(err, "unable to write temporary file %v", path)
	}

	if !opt.keep() {
		m.track(ctx, path)

		if createdDir {
			m.track(ctx, dir)
		}
	}

	return path, nil
}

// ensureDir resolves the target directory and creates it recursively when the
// caller requested one that does not exist yet. Only an explicitly requested
// directory is reported as created, so implicit ancestors are never tracked.
func (m *Manager) ensureDir(opt *Options) (dir string, created bool, err error) {
	dir = opt.dir()
	if dir == "" {
		return ospath.TempRoot(), false, nil
	}

	switch _, serr := os.Stat(dir); {
	case os.IsNotExist(serr):
		if merr := os.MkdirAll(dir, defaultDirMode); merr != nil {
			return "", false, errors.Wrapf(merr, "unable to create directory %v", dir)
		}

		return dir, true, nil

	case serr != nil:
		return "", false, errors.Wrapf(serr, "unable to stat %v", dir)
	}

	return dir, false, nil
}

func normalizeExtension(ext string) (string, error) {
	if ext == "" {
		return "", nil
	}

	if strings.ContainsRune(ext, '/') || strings.ContainsRune(ext, os.PathSeparator) {
		return "", errors.Wrapf(ErrInvalidArgument, "extension %q must not contain a path separator", ext)
	}

	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return ext, nil
}

func writeFileWithMode(path string, data []byte, mode os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if _, err := f.Write(data); err != nil {
		f.Close() //nolint:errcheck

		return err //nolint:wrapcheck
	}

	if err := f.Close(); err != nil {
		return err //nolint:wrapcheck
	}

	// chmod explicitly so umask cannot narrow the requested bits.
	return os.Chmod(path, mode) //nolint:wrapcheck
}

func mkdirWithMode(path string, mode os.FileMode) error {
	if err := os.Mkdir(path, mode); err != nil {
		return err //nolint:wrapcheck
	}

	return os.Chmod(path, mode) //nolint:wrapcheck
}
