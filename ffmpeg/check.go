package ffmpeg

import (
	"fmt"
	"os/exec"

	"animforge/config"

	"github.com/shirou/gopsutil/v3/disk"
)

// CheckTools verifies every required external binary before scheduling
// starts, so a missing tool is reported once instead of once per frame.
func CheckTools(cfg *config.Config, raster Raster) error {
	if _, err := exec.LookPath(cfg.FFBin); err != nil {
		return fmt.Errorf("ffmpeg binary not found or not in PATH: %s", cfg.FFBin)
	}
	if raster.Enabled() {
		if _, err := exec.LookPath(raster.bin()); err != nil {
			return fmt.Errorf("raster converter not found in PATH: %s", raster.bin())
		}
	}
	return nil
}

// CheckDisk verifies that the filesystem holding dir has at least min
// bytes free before frames start landing on it.
func CheckDisk(dir string, min int64) error {
	d, err := disk.Usage(dir)
	if err != nil {
		return fmt.Errorf("could not get disk usage for %s: %w", dir, err)
	}
	if d.Free < uint64(min) {
		return fmt.Errorf("not enough free disk space. Available: %d, Required: %d", d.Free, min)
	}
	return nil
}
