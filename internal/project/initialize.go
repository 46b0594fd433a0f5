package project

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/develmaycare/pyprojectutils/internal/models"
	"github.com/develmaycare/pyprojectutils/internal/templates"
)

const gitignoreTemplate = `*.pyc
.DS_Store
tmp/
tmp.*
`

const projectIniTemplate = `[project]
title = {{.title}}
category = {{.category}}
description = {{.description}}
license = {{.license}}
type = {{.type}}
stage = planning

[business]
code = {{.business_code}}
name = {{.business_name}}
`

const readmeTemplate = `# {{.title}}

{{.description}}
`

const privateLicenseTemplate = `Copyright (C) {{.year}} {{.business_name}}. All rights reserved.

This software is the property of {{.business_name}} and may not be copied,
distributed, or modified without the express written consent of the owner.
`

const publicLicenseTemplate = `Copyright (C) {{.year}} {{.business_name}}

Released under the {{.license}} license. See the license text for the full
terms of use.
`

// InitializeOptions tunes project scaffolding
type InitializeOptions struct {
	// Display echoes each file as it is written
	Display bool
}

// Initialize scaffolds the standard project files under the root, creating
// the root itself if needed. Existing files are never touched, so running
// it against an established project is harmless.
func (p *Project) Initialize(opts InitializeOptions) error {
	if !p.Exists() {
		if err := p.fs.MkdirAll(p.Root, 0755); err != nil {
			return fmt.Errorf("failed to create project root: %w", err)
		}
	}

	engine := templates.NewEngine()
	context := p.scaffoldContext()

	if p.Description != "" {
		if err := p.scaffold(opts, "DESCRIPTION.txt", p.Description+"\n"); err != nil {
			return err
		}
	}

	if err := p.scaffold(opts, ".gitignore", gitignoreTemplate); err != nil {
		return err
	}

	if p.License != "" {
		license, err := p.renderLicense(engine, context)
		if err != nil {
			return err
		}
		if err := p.scaffold(opts, "LICENSE.txt", license); err != nil {
			return err
		}
	}

	ini, err := engine.Render(projectIniTemplate, context)
	if err != nil {
		return fmt.Errorf("failed to render project config: %w", err)
	}
	if err := p.scaffold(opts, ConfigFileName, ini); err != nil {
		return err
	}

	readme, err := engine.Render(readmeTemplate, context)
	if err != nil {
		return fmt.Errorf("failed to render readme: %w", err)
	}
	if err := p.scaffold(opts, "README.markdown", readme); err != nil {
		return err
	}

	if err := p.scaffold(opts, "requirements.pip", ""); err != nil {
		return err
	}

	version := p.Version
	if version == "" {
		version = models.DefaultVersion
	}
	return p.scaffold(opts, VersionFileName, version+"\n")
}

func (p *Project) renderLicense(engine *templates.Engine, context map[string]string) (string, error) {
	source := publicLicenseTemplate
	if p.License == "private" {
		source = privateLicenseTemplate
	}

	license, err := engine.Render(source, context)
	if err != nil {
		return "", fmt.Errorf("failed to render license: %w", err)
	}
	return license, nil
}

// scaffold writes one file relative to the root unless it already exists
func (p *Project) scaffold(opts InitializeOptions, name, content string) error {
	path := filepath.Join(p.Root, name)
	if p.fs.Exists(path) {
		return nil
	}

	if opts.Display {
		fmt.Printf("Writing %s\n", path)
	}

	if err := p.fs.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (p *Project) scaffoldContext() map[string]string {
	business := p.Business()
	title := p.Title
	if title == "" {
		title = p.Name
	}

	return map[string]string{
		"name":          p.Name,
		"title":         title,
		"category":      p.Category,
		"type":          p.Type,
		"description":   p.Description,
		"license":       p.License,
		"business_code": business.Code,
		"business_name": business.Name,
		"year":          strconv.Itoa(time.Now().Year()),
	}
}
