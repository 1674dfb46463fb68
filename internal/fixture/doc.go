// Package fixture defines the canonical schedule record produced by
// the resolution pipeline, its identity key, and the dedup/sort pass
// applied before records are committed.
//
// All dates and local times are wall-clock values in one fixed named
// timezone (Asia/Shanghai), regardless of the process's own zone.
package fixture
