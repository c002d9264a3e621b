// Package cli — check.go implements the "stencil check" command.
//
// check is a startup preflight for an already-generated project: it reads
// the project manifest, resolves the port the service would prefer, and
// runs the same sequential upward port search the generated server
// performs at startup. The result tells the user, before they run the
// service, which port it would actually bind — or that no port is free.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/stencil/internal/config"
	"github.com/mmr-tortoise/stencil/internal/model"
	"github.com/mmr-tortoise/stencil/internal/port"
	"github.com/mmr-tortoise/stencil/internal/project"
)

// NewCheckCommand creates the "check" cobra command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [project-dir]",
		Short: "Report which port a generated project would bind at startup",
		Long: `Check reads the project's package.json and probes ports the same way the
generated server does at startup: sequentially upward from the preferred
port (PORT environment variable, then the rc file, then 3000) to 65535.

The probe binds and immediately releases a transient listener per
candidate port, so the result is a point-in-time answer, not a
reservation — another process can still take the port first.

Examples:
  stencil check demo
  PORT=8080 stencil check demo
  stencil check            # current directory`,

		// The project directory is optional and defaults to ".".
		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir := "."
			if len(args) == 1 {
				projectDir = args[0]
			}
			return runCheck(projectDir)
		},
	}
}

// runCheck performs the preflight against projectDir.
func runCheck(projectDir string) error {
	// The manifest proves the directory is a generated project and names
	// it for the report. A missing package.json is a dedicated exit code.
	manifest, err := project.ReadManifest(projectDir)
	if err != nil {
		return err
	}
	VerboseLog("Project: %s (version %s)", manifest.Name, manifest.Version)
	if start, ok := manifest.Scripts["start"]; ok {
		VerboseLog("Start command: %s", start)
	}

	cfg, err := config.Load(projectDir)
	if err != nil {
		return err
	}

	preferred := resolvePreferredPort(os.Getenv("PORT"), cfg)
	VerboseLog("Preferred port: %d", preferred)

	scanner := port.NewScanner()
	chosen, found := scanner.FindAvailablePort(preferred, port.MaxPort)

	probe := model.PortProbe{
		ProjectName:   manifest.Name,
		PreferredPort: preferred,
		Port:          chosen,
		Found:         found,
	}

	if !found {
		// Mirror the generated service's worst case, but with a proper
		// non-zero exit instead of its stay-alive-without-listening gap.
		return model.NewCLIError(model.ExitPortSearchFailed,
			fmt.Sprintf("no available port found between %d and %d", preferred, port.MaxPort))
	}

	printCheckResult(probe)
	return nil
}

// resolvePreferredPort picks the port the search starts from. Precedence
// matches the generated server template: PORT environment variable first,
// then the rc-file setting, then the built-in default of 3000. A PORT
// value that is not a positive integer is ignored, the same way
// parseInt-then-fallback behaves in the template.
func resolvePreferredPort(portEnv string, cfg config.Config) int {
	if portEnv != "" {
		if p, err := strconv.Atoi(portEnv); err == nil && p > 0 && p <= port.MaxPort {
			return p
		}
	}
	if cfg.PreferredPort > 0 {
		return cfg.PreferredPort
	}
	return config.DefaultPreferredPort
}

// printCheckResult outputs the probe result in text or JSON format.
func printCheckResult(probe model.PortProbe) {
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(probe, "", "  ")
		fmt.Println(string(data))
		return
	}

	if probe.Port == probe.PreferredPort {
		fmt.Printf("%s would listen on port %d\n", probe.ProjectName, probe.Port)
		return
	}
	fmt.Printf("%s would listen on port %d (preferred port %d is busy)\n",
		probe.ProjectName, probe.Port, probe.PreferredPort)
}
