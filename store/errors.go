package store

import "errors"

// ErrRailwayNotRegistered is returned by GetRailway when the reserved railway
// record does not exist. The record is mandatory for delay broadcasting, so
// its absence is a deployment error rather than a normal miss.
var ErrRailwayNotRegistered = errors.New("delaywire: railway user record is not registered")
