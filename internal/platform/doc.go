// Package platform contains OS integration glue: home and output directory
// handling, external tool lookup, output name selection and revealing folders
// in the system file manager.
package platform
