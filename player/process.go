package player

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// ProcessFinder reports whether a process with the given name is running.
type ProcessFinder interface {
	Running(ctx context.Context, name string) (bool, error)
}

// SystemProcesses looks the player up in the OS process table.
type SystemProcesses struct{}

// Running matches name case-insensitively as a substring of each process
// name, so "vlc" finds both "vlc" and "VLC.exe".
func (SystemProcesses) Running(ctx context.Context, name string) (bool, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return false, err
	}

	name = strings.ToLower(name)
	for _, p := range procs {
		// processes can exit between listing and inspection
		pname, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}

		if strings.Contains(strings.ToLower(pname), name) {
			return true, nil
		}
	}

	return false, nil
}

// ProcessFinderFunc adapts a function to ProcessFinder.
type ProcessFinderFunc func(ctx context.Context, name string) (bool, error)

func (f ProcessFinderFunc) Running(ctx context.Context, name string) (bool, error) {
	return f(ctx, name)
}
