//go:build unix

package console

import "golang.org/x/sys/unix"

func isElevated() bool {
	return unix.Geteuid() == 0
}
