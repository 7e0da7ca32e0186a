package assets

import (
	"embed"
	"fmt"
)

//go:embed styles/*
var styles embed.FS

//go:embed templates/*
var templates embed.FS

//go:embed scripts/*
var scripts embed.FS

// LoadStyle loads a CSS fragment from embedded assets by name.
// The name should not include the .css extension.
func LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(content), nil
}

// LoadTemplate loads an HTML template from embedded assets by name.
// The name should not include the .html extension.
func LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// LoadScript loads an HTML script fragment from embedded assets by name.
// The name should not include the .html extension.
func LoadScript(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := scripts.ReadFile("scripts/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrScriptNotFound, name)
	}

	return string(content), nil
}

// MustStyle loads a style and panics if it is missing.
// Intended for embedded assets whose absence is a programmer error.
func MustStyle(name string) string {
	css, err := LoadStyle(name)
	if err != nil {
		panic("assets: " + err.Error())
	}
	return css
}

// MustTemplate loads a template and panics if it is missing.
func MustTemplate(name string) string {
	tmpl, err := LoadTemplate(name)
	if err != nil {
		panic("assets: " + err.Error())
	}
	return tmpl
}

// MustScript loads a script fragment and panics if it is missing.
func MustScript(name string) string {
	script, err := LoadScript(name)
	if err != nil {
		panic("assets: " + err.Error())
	}
	return script
}
