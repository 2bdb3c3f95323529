// Package complete provides completion engines for input lines.
//
// Filenames completes paths, directories for cd, executables on PATH,
// environment variables, "@" host names and "~" user names, depending on
// the flags of the request.
package complete
