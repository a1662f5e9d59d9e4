// Package main provides the entry point of lensfolio, a portfolio site for a
// photographer. It serves the public pages and the photo gallery, accepts
// contact form submissions and lets allow-listed administrators edit the
// page content after signing in with Google.
package main
