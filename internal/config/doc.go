// Package config loads the pipeline configuration: tracked teams with
// their aliases and prioritized sources, the time-window horizons, and
// output destinations. Configuration is loaded once at process start
// and treated as immutable for the life of the run.
package config
