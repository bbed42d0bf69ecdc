// Package doctor runs diagnostic checks on speclint's configuration.
//
// Each [Check] inspects one concern and returns a [CheckResult]; a [Runner]
// executes its checks in registration order and tallies them into a [Report].
package doctor
