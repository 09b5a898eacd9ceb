// Package file provides accessibility trees loaded from YAML or JSON tree
// files. Importing it registers the provider with the platform package.
package file
