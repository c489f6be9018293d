// Package assets embeds the static markup shared by rendered documents:
// the image lightbox, the JSON view stylesheet and the JSON view script
// template.
package assets
