// Package preview serves a generated deck as a local HTML page so the
// cards can be inspected before import. It is a read-only convenience
// for eyeballing output, not a sync or storage service.
package preview
