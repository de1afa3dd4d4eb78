// Package creator drives "nuv new" end to end: validate the request, resolve
// and create the target directory, scaffold it, run uv sync, optionally
// install it, and roll the directory back if any step after its creation
// fails.
package creator
