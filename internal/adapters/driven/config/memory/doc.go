// Package memory provides an in-memory configuration store for tests and
// for runs where no config file should be touched.
package memory
