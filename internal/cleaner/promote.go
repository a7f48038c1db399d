package cleaner

import (
	"fmt"
	"os"

	hcerrors "github.com/chazuruo/histclean/internal/errors"
)

// BackupSuffix is appended to the history path when it is replaced.
const BackupSuffix = ".bak"

// Promote replaces the history file at src with the cleaned file at dst.
// The previous history is moved to src+".bak" first; if the cleaned file
// cannot be moved into place the backup is restored.
func Promote(src, dst string) (backup string, err error) {
	if _, err := os.Stat(dst); err != nil {
		return "", &hcerrors.HistoryError{Op: hcerrors.OpPromote, Path: dst, Err: hcerrors.Join(hcerrors.ErrNotFound, err)}
	}

	backup = src + BackupSuffix
	if err := os.Rename(src, backup); err != nil {
		return "", &hcerrors.HistoryError{Op: hcerrors.OpPromote, Path: src, Err: hcerrors.Join(hcerrors.ErrIO, err)}
	}

	if err := os.Rename(dst, src); err != nil {
		if rerr := os.Rename(backup, src); rerr != nil {
			err = fmt.Errorf("%w (restoring backup %s also failed: %v)", err, backup, rerr)
		}
		return "", &hcerrors.HistoryError{Op: hcerrors.OpPromote, Path: src, Err: hcerrors.Join(hcerrors.ErrIO, err)}
	}

	return backup, nil
}
