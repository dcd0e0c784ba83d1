// Package kernel contains shared value objects used across the domain model:
// UUID identifiers and geographic points. Value objects are immutable and can
// only be created through their constructor functions; zero values fail
// validation.
package kernel
