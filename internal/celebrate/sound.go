package celebrate

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// ExecSoundPlayer shells out to the platform audio helper. Missing
// binaries surface as an error the dispatcher swallows.
type ExecSoundPlayer struct {
	// Dir holds the sound files, one <name>.wav per sound.
	Dir string
}

// Play returns once the helper process has started; it never waits for
// the clip to finish.
func (p ExecSoundPlayer) Play(name string) error {
	file := filepath.Join(p.Dir, name+".wav")
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("paplay", file)
	case "darwin":
		cmd = exec.Command("afplay", file)
	default:
		return fmt.Errorf("celebrate: no audio helper on %s", runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
