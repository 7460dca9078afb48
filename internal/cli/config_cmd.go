// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/sched/internal/config"
	"github.com/jeranaias/sched/internal/ui/styles"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := a.configPath()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(a.out, path)
				return err
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration and tag palette",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runConfigShow()
			},
		},
		newConfigInitCmd(a),
	)
	return cmd
}

func newConfigInitCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigInit(force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

// configPath is --config or the default TOML location.
func (a *app) configPath() (string, error) {
	if a.flags.configPath != "" {
		return a.flags.configPath, nil
	}
	path, err := config.ConfigPathTOML()
	if err != nil {
		return "", &ConfigError{Err: err}
	}
	return path, nil
}

// runConfigShow prints the merged configuration as TOML followed by the
// resolved palette. Palette entries that are not valid colors are listed
// as warnings.
func (a *app) runConfigShow() error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if a.flags.theme != "" {
		cfg.Display.Theme = a.flags.theme
	}
	id, _ := cfg.ThemeID()

	extra, err := config.LoadPalette(a.flags.tagsPath)
	if err != nil {
		return notFoundOr(err, "palette", a.flags.tagsPath)
	}
	palette, err := cfg.ResolvePalette(id, extra)
	if err != nil {
		return notFoundOr(err, "palette", cfg.Palette.File)
	}

	var out string
	out += SectionStyle.Render("# configuration") + "\n"
	out += cfg.String()

	out += "\n" + SectionStyle.Render(fmt.Sprintf("# theme (%s)", id)) + "\n"
	theme := id.Theme()
	for _, role := range styles.Roles {
		c := theme.Color(role)
		out += fmt.Sprintf("%s %-16s %s\n", styles.Indicator(c), role, DimStyle.Render(c.Hex()))
	}

	out += "\n" + SectionStyle.Render(fmt.Sprintf("# palette (%s)", id)) + "\n"
	for _, tag := range palette.Tags() {
		hex := palette[tag]
		swatch := "  "
		if c, err := styles.ParseHex(hex); err == nil {
			swatch = styles.Indicator(c) + " "
		}
		out += fmt.Sprintf("%s%-16s %s\n", swatch, tag, DimStyle.Render(hex))
	}
	if err := palette.Validate(); err != nil {
		a.warn("%v", err)
	}
	return a.write(a.out, out)
}

// runConfigInit writes the defaults atomically.
func (a *app) runConfigInit(force bool) error {
	path, err := a.configPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !force {
		return &CommandError{Command: "config init", Reason: path + " already exists (use --force to overwrite)"}
	}
	cfg := config.Default()
	switch {
	case a.flags.configPath == "":
		err = config.Save(cfg)
	case strings.EqualFold(filepath.Ext(path), ".json"):
		err = config.SaveJSON(cfg, path)
	default:
		err = config.SaveTOML(cfg, path)
	}
	if err != nil {
		return &CommandError{Command: "config init", Reason: "cannot write " + path, Err: err}
	}
	_, err = fmt.Fprintf(a.out, "%s %s\n", SuccessStyle.Render("wrote"), path)
	return err
}
