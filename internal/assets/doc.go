// Package assets provides the embedded CSS styles, HTML templates, and
// script fragments used to assemble exam documents.
package assets
