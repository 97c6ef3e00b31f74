// Package imaging provides the image display collaborator for image posts:
// a renderer that resolves opaque content locators against a file system,
// with an LRU cache in front of repeated loads.
package imaging
