// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"
	"testing"

	"coqc-cli/internal/install"
)

func TestUsageTextMentionsDriverOptions(t *testing.T) {
	t.Parallel()

	text := usageText()
	for _, want := range []string{
		"Usage: coqc",
		"-verbose",
		"-image",
		"-byte",
		"-opt",
		"-where",
		"-config",
		"--version",
		"-print-version",
		"--help",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("usage text missing %q", want)
		}
	}
}

func TestMachineVersionLine(t *testing.T) {
	t.Parallel()

	line := machineVersionLine()
	fields := strings.Fields(line)
	if len(fields) != 2 {
		t.Fatalf("machine version = %q, want exactly two fields", line)
	}
	if fields[0] != Version {
		t.Errorf("first field = %q, want %q", fields[0], Version)
	}
}

func TestConfigReport(t *testing.T) {
	t.Parallel()

	lay := install.Layout{
		Coqlib:     "/opt/coq/lib",
		Coqbin:     "/opt/coq/bin",
		ConfigFile: "/home/u/.config/coqc/config.toml",
	}

	report := configReport(lay)
	for _, want := range []string{
		"COQLIB=/opt/coq/lib\n",
		"COQBIN=/opt/coq/bin\n",
		"CONFIGFILE=/home/u/.config/coqc/config.toml\n",
		"VERSION=",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("config report missing %q, got:\n%s", want, report)
		}
	}
}

func TestConfigReportNoConfigFile(t *testing.T) {
	t.Parallel()

	report := configReport(install.Layout{Coqlib: "/l", Coqbin: "/b"})
	if !strings.Contains(report, "CONFIGFILE=(none)\n") {
		t.Errorf("config report should mark a missing config file, got:\n%s", report)
	}
}
