// Package scaffold implements the project generator: it materializes a
// fixed directory tree and a fixed set of template files for a new
// Express-style backend service, plus the package.json manifest.
//
// Design decisions:
//   - Templates are plain string constants, not a templating engine. The
//     only value interpolated anywhere is the project name, and only into
//     the manifest, which is built as a Go struct and serialized with
//     encoding/json instead.
//   - Generation is stateless and last-write-wins: re-running against an
//     existing directory silently overwrites every template file, with no
//     diffing and no backup. This keeps the generator idempotent at the
//     file level (two runs produce byte-identical output), at the cost of
//     destroying prior edits.
//   - Filesystem operations are strictly sequential; the total work is a
//     handful of MkdirAll/WriteFile calls, so there is nothing to gain
//     from parallelism.
//   - Dependency installation is abstracted behind the Installer interface
//     so tests can substitute a recording stub instead of invoking a real
//     package manager.
package scaffold
