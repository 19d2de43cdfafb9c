package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// Environment passed to extensions, so they open the same ledger.
const (
	EnvStore       = "LANSKY_STORE"
	EnvRedisURL    = "LANSKY_REDIS_URL"
	EnvRedisPrefix = "LANSKY_REDIS_PREFIX"
	EnvVerbose     = "LANSKY_VERBOSE"
)

// RunExtension attempts to find and execute an external lansky-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "lansky-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Debugf("external command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return true, 1
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr

	// Pass the effective configuration as environment variables.
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvStore+"="+cfg.Store)
	cmd.Env = append(cmd.Env, EnvRedisURL+"="+cfg.RedisURL)
	cmd.Env = append(cmd.Env, EnvRedisPrefix+"="+cfg.RedisPrefix)
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(cfg.Verbose))

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
