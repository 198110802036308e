// Package params holds the ordered option sets that flow through a target
// build: the declaration a caller writes, the defaults a target kind adds to
// it, and the merged set handed to the engine. Values are either ordered
// string lists or boolean switches, and merging two sets concatenates the
// values of shared keys.
package params
