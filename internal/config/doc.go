// Package config provides the optional YAML configuration of boq: the column
// layout and label set of the survey sheets and the names used on export.
package config
