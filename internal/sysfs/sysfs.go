// Package sysfs reads single-value pseudo-files such as those under /sys and
// /proc. Failures are classified as source_absent or source_unreadable so
// samplers can turn them into sentinels.
package sysfs

import (
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/CristiGvl/picoSysMon/internal/errors"
	"github.com/spf13/afero"
)

// NewFs returns a filesystem rooted at root. An empty root or "/" yields the
// host filesystem unchanged.
func NewFs(root string) afero.Fs {
	osFs := afero.NewOsFs()
	if root == "" || root == "/" {
		return osFs
	}
	return afero.NewBasePathFs(osFs, root)
}

// Exists reports whether path exists. A stat failure other than not-exist
// counts as existing so the caller goes on to read and classify it as unreadable.
func Exists(fsys afero.Fs, path string) bool {
	_, err := fsys.Stat(path)
	if err == nil {
		return true
	}
	return !isNotExist(err)
}

// DirExists reports whether path exists and is a directory.
func DirExists(fsys afero.Fs, path string) bool {
	ok, err := afero.DirExists(fsys, path)
	return err == nil && ok
}

// ReadString returns the trimmed content of path.
func ReadString(fsys afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if isNotExist(err) {
			return "", errors.New().Wrap(errors.ErrSourceAbsent, err).WithData(path)
		}
		return "", errors.New().Wrap(errors.ErrSourceUnreadable, err).WithData(path)
	}
	return strings.TrimSpace(string(data)), nil
}

// ReadInt parses the content of path as a base-10 integer.
func ReadInt(fsys afero.Fs, path string) (int64, error) {
	s, err := ReadString(fsys, path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.New().Wrap(errors.ErrSourceUnreadable, err).WithData(path)
	}
	return v, nil
}

// ReadFloat parses the content of path as a float.
func ReadFloat(fsys afero.Fs, path string) (float64, error) {
	s, err := ReadString(fsys, path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New().Wrap(errors.ErrSourceUnreadable, err).WithData(path)
	}
	return v, nil
}

func isNotExist(err error) bool {
	return os.IsNotExist(err) || errors.Is(err, fs.ErrNotExist)
}
