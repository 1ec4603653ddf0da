// Package source contains the readers that gather one metric family each.
//
// Every reader is a metrics.Reader: it reads OS or hardware state directly
// and always returns a Reading. Missing files, failed commands, permission
// errors and unconfigured pins come back as unavailable readings instead of
// errors, so one failing source never affects another.
package source
